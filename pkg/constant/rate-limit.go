// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

import "time"

// Rate limiter defaults. Each tier keeps an independent counter per client IP.
const (
	RateLimitDefaultGlobalMax   = 300
	RateLimitDefaultDownloadMax = 30
	RateLimitDefaultDispatchMax = 60
	RateLimitDefaultWindow      = 1 * time.Minute
)
