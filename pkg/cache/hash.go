package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PlanKey derives the cache key for a layout config. The config is
// canonicalized through JSON so that two identical configs always hash the
// same regardless of how they were constructed.
func PlanKey(cfg any) string {
	data, _ := json.Marshal(cfg)
	return hashKey("plan", data)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}
