// Package vault implements the in-memory Password Safe V3 representation
// and the container codec that reads and writes it.
// It has no knowledge of any terminal UI, clipboard, or TOTP consumer;
// those are external collaborators.
package vault

import (
	"pws3vault/internal/vaultcrypto"
	"pws3vault/internal/vaultutil"
)

// Vault is a collection of Records plus the envelope fields needed to
// re-derive its cryptographic keys on the next save.
type Vault struct {
	fTag    [4]byte
	fSalt   []byte // 32 bytes
	fIter   uint32
	fShaPs  []byte // 32 bytes, recomputed on every save
	fB1     []byte // 16 bytes
	fB2     []byte // 16 bytes
	fB3     []byte // 16 bytes
	fB4     []byte // 16 bytes
	fIV     []byte // 16 bytes
	fHMAC   []byte // 32 bytes, recomputed on every save

	header  *Header
	records []*Record
}

// Header returns the vault's typed/raw header view.
func (v *Vault) Header() *Header { return v.header }

// Records returns the vault's records in load/insertion order.
func (v *Vault) Records() []*Record {
	out := make([]*Record, len(v.records))
	copy(out, v.records)
	return out
}

// AddRecord appends a record to the vault.
func (v *Vault) AddRecord(r *Record) {
	v.records = append(v.records, r)
}

// RemoveRecord removes the first record matching r by pointer identity,
// reporting whether it was found.
func (v *Vault) RemoveRecord(r *Record) bool {
	for i, existing := range v.records {
		if existing == r {
			v.records = append(v.records[:i], v.records[i+1:]...)
			return true
		}
	}
	return false
}

// CreateEmpty builds a fresh vault: new salt, IV, and wrapped key blocks
// drawn from the cryptographic RNG, no records.
func CreateEmpty(passphrase string) (*Vault, error) {
	v := &Vault{
		fTag:   vaultutil.FileMagic,
		header: newHeader(),
	}

	salt, err := vaultcrypto.RandomBytes(32)
	if err != nil {
		return nil, err
	}
	v.fSalt = salt
	v.fIter = vaultutil.MinKeystretchIterations

	if err := v.generateWrappedKeys([]byte(passphrase)); err != nil {
		return nil, err
	}

	iv, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return nil, err
	}
	v.fIV = iv

	// No records; HMAC over an empty value stream is computed the same way
	// Save computes it, so an immediate Save round-trips cleanly.
	return v, nil
}

// RotateKeyMaterial redraws the salt, B1..B4 wrapped key blocks, and IV
// against the given passphrase. The V3 format preserves these across
// ordinary saves (cheap saves, same K/L); this method is the escape hatch
// for callers who want a hard rotation, e.g. on passphrase change, instead
// of that default.
func (v *Vault) RotateKeyMaterial(passphrase string) error {
	salt, err := vaultcrypto.RandomBytes(32)
	if err != nil {
		return err
	}
	v.fSalt = salt
	if err := v.generateWrappedKeys([]byte(passphrase)); err != nil {
		return err
	}
	iv, err := vaultcrypto.RandomBytes(16)
	if err != nil {
		return err
	}
	v.fIV = iv
	return nil
}
