package vault

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"

	"pws3vault/internal/tlv"
	"pws3vault/internal/twofish"
	"pws3vault/internal/vaultutil"
)

// Save serialises the vault back to bytes, authenticated with a fresh
// HMAC. LAST_SAVE and WHAT_SAVED are overwritten unconditionally; the
// stored f_iter is raised to the V3 minimum if it was lower (invariant 5);
// f_salt, f_b1..f_b4, and f_iv are preserved across the save, not rotated.
// See RotateKeyMaterial for the opt-in alternative.
func (v *Vault) Save(passphrase string) ([]byte, error) {
	// Step 1.
	v.header.setLastSave(uint32(nowUnix()))
	v.header.setWhatSaved(ProducerVersion)

	var buf bytes.Buffer

	// Step 2.
	buf.Write(v.fTag[:])
	buf.Write(v.fSalt)
	iter := v.fIter
	if iter < vaultutil.MinKeystretchIterations {
		iter = vaultutil.MinKeystretchIterations
	}
	buf.Write(leUint32Bytes(iter))

	// Step 3.
	password := []byte(passphrase)
	stretched := stretch(password, v.fSalt, iter)
	shaPs := sha256.Sum256(stretched)
	v.fIter = iter
	v.fShaPs = shaPs[:]
	buf.Write(shaPs[:])

	// Step 4.
	buf.Write(v.fB1)
	buf.Write(v.fB2)
	buf.Write(v.fB3)
	buf.Write(v.fB4)
	buf.Write(v.fIV)

	// Step 5.
	k, l, err := v.unwrapKeys(stretched)
	if err != nil {
		return nil, err
	}
	defer zeroAll(stretched, k, l)

	mac := hmac.New(sha256.New, l)
	ecb, err := twofish.New(k)
	if err != nil {
		return nil, err
	}
	cbc := twofish.NewCBCEncrypter(ecb, append([]byte(nil), v.fIV...))

	endOfEntry := &tlv.Field{Type: tlv.EndOfEntry}

	// Step 6-7: header.
	for _, f := range v.header.RawFields() {
		if err := tlv.WriteField(&buf, cbc, f); err != nil {
			return nil, err
		}
		mac.Write(f.Value)
	}
	if err := tlv.WriteField(&buf, cbc, endOfEntry); err != nil {
		return nil, err
	}
	mac.Write(endOfEntry.Value)

	// Step 8: records.
	for _, rec := range v.records {
		for _, f := range rec.RawFields() {
			if err := tlv.WriteField(&buf, cbc, f); err != nil {
				return nil, err
			}
			mac.Write(f.Value)
		}
		if err := tlv.WriteField(&buf, cbc, endOfEntry); err != nil {
			return nil, err
		}
		mac.Write(endOfEntry.Value)
	}

	// Step 9.
	if err := tlv.WriteEOF(&buf); err != nil {
		return nil, err
	}

	// Step 10.
	v.fHMAC = mac.Sum(nil)
	buf.Write(v.fHMAC)

	return buf.Bytes(), nil
}
