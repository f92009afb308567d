// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

// Pagination defaults for list endpoints.
const (
	DefaultPaginationLimit = 10
	DefaultPaginationPage  = 1
	MaxPaginationLimit     = 100
)
