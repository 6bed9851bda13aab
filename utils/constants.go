// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis identity cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the sliding time-to-live for identity cache entries.
const AuthCacheTTL = time.Hour

// IdentityContextKey is the gin context key holding the resolved caller.
const IdentityContextKey = "identity"
