// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

import "time"

// Circuit breaker settings guarding object storage calls.
const (
	CircuitBreakerMaxRequests uint32 = 3
	CircuitBreakerInterval           = 60 * time.Second
	CircuitBreakerTimeout            = 30 * time.Second
	CircuitBreakerThreshold   uint32 = 5
)
