// Package tlv implements the length-type-value framing one Password Safe V3
// field is wire-encoded with: L(4) || T(1) || V(L), random-padded to a
// 16-byte boundary and Twofish-CBC encrypted a block at a time, terminated
// by an in-clear EOF marker.
package tlv

import (
	"bytes"
	"encoding/binary"
	"io"

	"pws3vault/internal/twofish"
	"pws3vault/internal/vaultcrypto"
	"pws3vault/internal/vaulterrors"
)

// EndOfEntry is the sentinel raw_type terminating a record's (or header's)
// field sequence on the wire.
const EndOfEntry uint8 = 0xff

// Field is one decoded TLV value: an 8-bit type tag and its opaque value
// bytes. The on-wire length is simply len(Value); it is never stored
// separately since the decoded byte string carries no padding.
type Field struct {
	Type  uint8
	Value []byte
}

// read16 reads exactly one 16-byte block, reporting vaulterrors.ErrTruncated
// on a short read.
func read16(r io.Reader) ([]byte, error) {
	block := make([]byte, twofish.BlockSize)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "reading 16-byte TLV block")
	}
	return block, nil
}

// ReadField reads one field from r through cbc. Returns (nil, nil) when the
// literal EOF marker is encountered in place of an encrypted block; this is
// the only way out of the field-reading loop short of a truncated stream.
func ReadField(r io.Reader, cbc *twofish.CBC) (*Field, error) {
	block, err := read16(r)
	if err != nil {
		return nil, err
	}

	var marker [twofish.BlockSize]byte
	copy(marker[:], block)
	if marker == eofMarker {
		return nil, nil
	}

	data := cbc.DecryptBlock(block)

	rawLen := binary.LittleEndian.Uint32(data[0:4])
	rawType := data[4]
	value := append([]byte(nil), data[5:]...)

	if rawLen > 11 {
		extraBlocks := (int(rawLen) + 4) / 16
		for i := 0; i < extraBlocks; i++ {
			block, err := read16(r)
			if err != nil {
				return nil, err
			}
			value = append(value, cbc.DecryptBlock(block)...)
		}
	}

	if uint32(len(value)) < rawLen {
		return nil, vaulterrors.Wrap(vaulterrors.ErrTruncated, "field value shorter than declared length")
	}
	value = value[:rawLen]

	return &Field{Type: rawType, Value: value}, nil
}

// WriteField encrypts and writes one field through cbc, padding the
// assembled L||T||V block up to a 16-byte boundary with cryptographically
// random bytes, never zeros, since the padding's only job is to carry
// entropy.
func WriteField(w io.Writer, cbc *twofish.CBC, f *Field) error {
	var buf bytes.Buffer
	var lenBytes [4]byte
	binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(f.Value)))
	buf.Write(lenBytes[:])
	buf.WriteByte(f.Type)
	buf.Write(f.Value)

	data := buf.Bytes()
	if rem := len(data) % twofish.BlockSize; rem != 0 {
		padLen := twofish.BlockSize - rem
		pad, err := vaultcrypto.RandomBytes(padLen)
		if err != nil {
			return err
		}
		data = append(data, pad...)
	}

	for off := 0; off < len(data); off += twofish.BlockSize {
		block := data[off : off+twofish.BlockSize]
		ct := cbc.EncryptBlock(block)
		if _, err := w.Write(ct); err != nil {
			return err
		}
	}
	return nil
}

// WriteEOF writes the literal EOF marker in the clear. Unlike every other
// field, it is never encrypted, and it doubles as the only signal a reader
// has that the field stream has ended before the trailing HMAC.
func WriteEOF(w io.Writer) error {
	_, err := w.Write(eofMarker[:])
	return err
}

var eofMarker = [twofish.BlockSize]byte{
	'P', 'W', 'S', '3', '-', 'E', 'O', 'F', 'P', 'W', 'S', '3', '-', 'E', 'O', 'F',
}
