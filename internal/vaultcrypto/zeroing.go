package vaultcrypto

import "crypto/subtle"

// Zero overwrites a byte slice with zeros to reduce the window during which
// key material (P', K, L) is recoverable from memory. Go's
// garbage collector and compiler can still retain copies elsewhere; this is
// a best-effort mitigation, not a guarantee.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// ZeroAll zeros every slice passed in, for tearing down all the key
// material used by a single open/save call in one place.
func ZeroAll(slices ...[]byte) {
	for _, s := range slices {
		Zero(s)
	}
}

// KeyMaterial wraps the stretched passphrase and unwrapped K/L keys derived
// for a single open or save call, with automatic zeroing on Close.
type KeyMaterial struct {
	StretchedPassword []byte
	K                 []byte // Twofish-CBC key
	L                 []byte // HMAC-SHA-256 key
	closed            bool
}

// Close securely zeros all key material. Idempotent.
func (km *KeyMaterial) Close() {
	if km == nil || km.closed {
		return
	}
	ZeroAll(km.StretchedPassword, km.K, km.L)
	km.closed = true
}
