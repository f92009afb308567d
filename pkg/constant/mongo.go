// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

// MongoDB collection names.
const (
	MongoCollectionReport  = "report"
	MongoCollectionProduct = "product"
	MongoCollectionUser    = "user"
)

// Mongo connection pool bounds used when MONGO_MAX_POOL_SIZE is unset or invalid.
const (
	MongoDefaultMaxPoolSize uint64 = 100
	MongoMaxAllowedPoolSize uint64 = 1000
)
