// Package vaultcrypto provides the keystretch and key-material hygiene
// primitives the vault envelope needs. This is
// format-critical code: the stretch parameters are fixed by the V3 spec,
// not a choice.
package vaultcrypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"pws3vault/internal/vaulterrors"
)

// StretchSize is the byte length of the stretched passphrase P'.
const StretchSize = sha256.Size

// Stretch derives P' = iterate(sha256, sha256(password||salt), n), the
// KEYSTRETCH construction from Schneier's low-entropy key paper.
// Iteration count is attacker-controlled on read (it comes from the
// file); callers are responsible for any minimum-iteration policy on save.
func Stretch(password, salt []byte, iterations uint32) [StretchSize]byte {
	h := sha256.New()
	h.Write(password)
	h.Write(salt)
	stretched := h.Sum(nil)

	for i := uint32(0); i < iterations; i++ {
		sum := sha256.Sum256(stretched)
		stretched = sum[:]
	}

	var out [StretchSize]byte
	copy(out[:], stretched)
	return out
}

// RandomBytes draws n cryptographically secure random bytes, surfacing
// vaulterrors.ErrRNGUnavailable on failure.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, vaulterrors.NewCryptoError("rand", fmt.Errorf("%w: %v", vaulterrors.ErrRNGUnavailable, err))
	}
	return b, nil
}
