package vault

import (
	"os"
	"path/filepath"

	"pws3vault/internal/vaulterrors"
	"pws3vault/internal/vaultlog"
)

// SaveAtomic serialises the vault and commits it to path without ever
// leaving a half-written file in its place. It writes to a sibling
// temp file, re-opens and re-authenticates that temp file with the same
// passphrase, and only then swaps it onto path: the strongest local
// guarantee available given V3 carries no in-band checksum besides the
// HMAC itself.
func (v *Vault) SaveAtomic(path, passphrase string) error {
	data, err := v.Save(passphrase)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".*.part")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	verifyData, err := os.ReadFile(tmpName)
	if err != nil {
		os.Remove(tmpName)
		return vaulterrors.Wrap(vaulterrors.ErrIntegrityFailure, "re-reading temp file")
	}
	if _, err := Open(verifyData, passphrase); err != nil {
		os.Remove(tmpName)
		vaultlog.Error("atomic save failed self-verification", vaultlog.String("path", path), vaultlog.Err(err))
		return vaulterrors.Wrap(vaulterrors.ErrIntegrityFailure, "re-opening temp file after write")
	}

	// Best-effort remove the destination, then rename the temp file onto
	// it.
	_ = os.Remove(path)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	vaultlog.Info("vault saved atomically", vaultlog.String("path", path), vaultlog.Int("records", len(v.records)))
	return nil
}

// CreateAndSave builds a fresh empty vault and immediately persists it to
// path.
func CreateAndSave(path, passphrase string) (*Vault, error) {
	v, err := CreateEmpty(passphrase)
	if err != nil {
		return nil, err
	}
	if err := v.SaveAtomic(path, passphrase); err != nil {
		return nil, err
	}
	return v, nil
}

// OpenFile reads path from disk and parses it as a V3 container, a thin
// convenience wrapper around Open(data, passphrase) for callers working
// with files directly.
func OpenFile(path, passphrase string) (*Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Open(data, passphrase)
}
