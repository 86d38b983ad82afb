// Package twofish wraps golang.org/x/crypto/twofish, the Go ecosystem's
// Twofish block cipher implementation, behind the ECB and CBC contracts
// the Password Safe V3 format mandates.
//
// The V3 envelope calls for raw, unpadded Twofish in two modes: bare
// single-block ECB (to wrap/unwrap the B1..B4 key blocks) and externally
// IV'd CBC over the field stream. Neither mode is exposed directly by
// crypto/cipher in a form that matches the wire format's one-block-at-a-time
// consumption, so this package supplies thin, block-oriented adapters.
package twofish

import (
	"crypto/cipher"

	xtwofish "golang.org/x/crypto/twofish"

	"pws3vault/internal/vaulterrors"
)

// BlockSize is the Twofish block size in bytes.
const BlockSize = 16

// ECB performs bare single-block Twofish encryption/decryption with no
// chaining and no padding, used only to wrap and unwrap the B1..B4 key
// blocks.
type ECB struct {
	block cipher.Block
}

// New constructs an ECB cipher from a 16, 24, or 32 byte key. Any other
// length reports vaulterrors.ErrInvalidKeyLength.
func New(key []byte) (*ECB, error) {
	block, err := xtwofish.NewCipher(key)
	if err != nil {
		return nil, vaulterrors.NewCryptoError("ecb", vaulterrors.ErrInvalidKeyLength)
	}
	return &ECB{block: block}, nil
}

// Encrypt encrypts exactly one 16-byte block.
func (e *ECB) Encrypt(block []byte) []byte {
	dst := make([]byte, BlockSize)
	e.block.Encrypt(dst, block)
	return dst
}

// Decrypt decrypts exactly one 16-byte block.
func (e *ECB) Decrypt(block []byte) []byte {
	dst := make([]byte, BlockSize)
	e.block.Decrypt(dst, block)
	return dst
}

// Block returns the underlying cipher.Block, for constructing a CBC mode
// over the same key.
func (e *ECB) Block() cipher.Block {
	return e.block
}
