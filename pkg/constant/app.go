// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

const ApplicationName = "transparency-portal"

// AdminRole is the role value that grants administrative access on destructive operations.
const AdminRole = "admin"

// PublicReportsPathPrefix is the URL prefix under which generated report files are served.
const PublicReportsPathPrefix = "/public/reports/"

// RedactPlaceholder replaces credentials before a connection string is logged.
const RedactPlaceholder = "REDACTED"
