package vault

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"pws3vault/internal/tlv"
	"pws3vault/internal/twofish"
	"pws3vault/internal/vaulterrors"
	"pws3vault/internal/vaultutil"
)

// Open parses a V3 container from data and authenticates it against
// passphrase.
func Open(data []byte, passphrase string) (*Vault, error) {
	r := bytes.NewReader(data)

	v := &Vault{header: newHeader()}

	// Step 1: magic tag.
	var tag [4]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading magic tag")
	}
	v.fTag = tag
	if tag != vaultutil.FileMagic {
		return nil, vaulterrors.ErrNotPasswordSafeV3
	}

	// Step 2: salt.
	salt := make([]byte, 32)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading salt")
	}
	v.fSalt = salt

	// Step 3: iteration count.
	iterBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, iterBytes); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading iteration count")
	}
	v.fIter = leUint32(iterBytes)

	// Step 4: stretch.
	password := []byte(passphrase)
	stretched := stretch(password, v.fSalt, v.fIter)

	// Step 5: verify H(P').
	shaPs := make([]byte, 32)
	if _, err := io.ReadFull(r, shaPs); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading passphrase hash")
	}
	v.fShaPs = shaPs
	myShaPs := sha256.Sum256(stretched)
	if !bytes.Equal(shaPs, myShaPs[:]) {
		return nil, vaulterrors.ErrBadPassphrase
	}

	// Step 6: wrapped key blocks.
	v.fB1 = make([]byte, 16)
	v.fB2 = make([]byte, 16)
	v.fB3 = make([]byte, 16)
	v.fB4 = make([]byte, 16)
	for _, b := range [][]byte{v.fB1, v.fB2, v.fB3, v.fB4} {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading wrapped key block")
		}
	}

	// Step 7: unwrap K, L.
	k, l, err := v.unwrapKeys(stretched)
	if err != nil {
		return nil, err
	}
	defer zeroAll(stretched, k, l)

	// Step 8: IV.
	iv := make([]byte, 16)
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading IV")
	}
	v.fIV = iv

	// Step 9: HMAC + CBC state.
	mac := hmac.New(sha256.New, l)
	ecb, err := twofish.New(k)
	if err != nil {
		return nil, err
	}
	cbc := twofish.NewCBCDecrypter(ecb, append([]byte(nil), iv...))

	// Step 10: header fields.
	for {
		field, err := tlv.ReadField(r, cbc)
		if err != nil {
			return nil, err
		}
		if field == nil {
			// The EOF marker in place of END_OF_ENTRY: malformed but not
			// truncated, and not treated as an error.
			break
		}
		if field.Type == tlv.EndOfEntry {
			break
		}
		v.header.AddRawField(field)
		mac.Write(field.Value)
	}

	// Step 11: records.
	current := newRecord()
	for {
		field, err := tlv.ReadField(r, cbc)
		if err != nil {
			return nil, err
		}
		if field == nil {
			break
		}
		if field.Type == tlv.EndOfEntry {
			v.records = append(v.records, current)
			current = newRecord()
			mac.Write(field.Value)
			continue
		}
		mac.Write(field.Value)
		current.AddRawField(field)
	}

	// Step 12: trailing HMAC.
	fileHMAC := make([]byte, 32)
	if _, err := io.ReadFull(r, fileHMAC); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading HMAC")
	}
	v.fHMAC = fileHMAC

	myHMAC := mac.Sum(nil)
	if !hmac.Equal(fileHMAC, myHMAC) {
		return nil, vaulterrors.ErrIntegrityFailure
	}

	return v, nil
}
