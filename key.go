package docdeck

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// RequestKey is the normalized identity of a request: an operation name
// plus a fingerprint of its parameters. Two keys are equal iff the
// operation matches and the parameters are structurally equal, regardless
// of call site. Map-valued parameters fingerprint order-independently
// because the canonical JSON encoding sorts object keys.
type RequestKey struct {
	Op     string
	Params any
}

// NewRequestKey returns a key for the operation and parameters.
func NewRequestKey(op string, params any) RequestKey {
	return RequestKey{Op: op, Params: params}
}

// String returns the cache-addressable form "op:fingerprint". Parameterless
// operations fingerprint to the bare operation name.
func (k RequestKey) String() string {
	if k.Params == nil {
		return k.Op
	}
	return k.Op + ":" + k.fingerprint()
}

// HasPrefix reports whether the key's operation name starts with prefix.
// Used by prefix invalidation.
func (k RequestKey) HasPrefix(prefix string) bool {
	return strings.HasPrefix(k.Op, prefix)
}

// fingerprint hashes the canonical JSON encoding of the parameters.
// encoding/json emits struct fields in declaration order and map keys
// sorted, so identical logical parameters always hash identically.
func (k RequestKey) fingerprint() string {
	data, err := json.Marshal(k.Params)
	if err != nil {
		// Unencodable parameters still need a stable-enough identity;
		// fall back to the formatted value.
		data = fmt.Appendf(nil, "%+v", k.Params)
	}
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// KeyPrefix extracts the operation name from a cache-addressable key string.
func KeyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
