package twofish

import "crypto/cipher"

// CBC is a one-directional Twofish-CBC stream built over a single ECB
// instance and an externally supplied 16-byte IV. The format requires a
// fresh instance per read and per write: state only ever advances forward
// along whichever direction the instance was built for, never both.
type CBC struct {
	mode cipher.BlockMode
}

// NewCBCEncrypter builds a CBC instance for encrypting successive 16-byte
// plaintext blocks: cipher_prev = ECB.Encrypt(plain XOR state); state <-
// cipher_prev.
func NewCBCEncrypter(ecb *ECB, iv []byte) *CBC {
	return &CBC{mode: cipher.NewCBCEncrypter(ecb.block, iv)}
}

// NewCBCDecrypter builds a CBC instance for decrypting successive 16-byte
// ciphertext blocks: plain = ECB.Decrypt(cipher) XOR state; state <- cipher.
func NewCBCDecrypter(ecb *ECB, iv []byte) *CBC {
	return &CBC{mode: cipher.NewCBCDecrypter(ecb.block, iv)}
}

// EncryptBlock encrypts exactly one 16-byte block, advancing the chain
// state.
func (c *CBC) EncryptBlock(block []byte) []byte {
	dst := make([]byte, BlockSize)
	c.mode.CryptBlocks(dst, block)
	return dst
}

// DecryptBlock decrypts exactly one 16-byte block, advancing the chain
// state.
func (c *CBC) DecryptBlock(block []byte) []byte {
	dst := make([]byte, BlockSize)
	c.mode.CryptBlocks(dst, block)
	return dst
}
