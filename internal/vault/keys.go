package vault

import (
	"crypto/sha256"

	"pws3vault/internal/twofish"
	"pws3vault/internal/vaultcrypto"
)

// generateWrappedKeys derives P' from password against the vault's current
// salt/iter, records H(P'), and wraps four freshly drawn 16-byte blocks
// with ECB(P') to produce B1..B4, the inverse of the unwrap step performed
// on read, used when creating a vault or rotating its key material.
func (v *Vault) generateWrappedKeys(password []byte) error {
	stretched := vaultcrypto.Stretch(password, v.fSalt, v.fIter)
	shaPs := sha256.Sum256(stretched[:])
	v.fShaPs = shaPs[:]

	ecb, err := twofish.New(stretched[:])
	if err != nil {
		return err
	}

	b1raw, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return err
	}
	b2raw, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return err
	}
	b3raw, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return err
	}
	b4raw, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return err
	}

	v.fB1 = ecb.Encrypt(b1raw)
	v.fB2 = ecb.Encrypt(b2raw)
	v.fB3 = ecb.Encrypt(b3raw)
	v.fB4 = ecb.Encrypt(b4raw)

	vaultcrypto.Zero(stretched[:])
	return nil
}

// unwrapKeys recovers K (Twofish-CBC key) and L (HMAC key) from the
// vault's stored B1..B4 by ECB-decrypting them with the stretched
// passphrase.
func (v *Vault) unwrapKeys(stretched []byte) (k, l []byte, err error) {
	ecb, err := twofish.New(stretched)
	if err != nil {
		return nil, nil, err
	}
	k = append(ecb.Decrypt(v.fB1), ecb.Decrypt(v.fB2)...)
	l = append(ecb.Decrypt(v.fB3), ecb.Decrypt(v.fB4)...)
	return k, l, nil
}
