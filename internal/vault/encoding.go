package vault

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// decodeUTF8Lossy decodes b as UTF-8, replacing any malformed sequence with
// U+FFFD, used for every text field (GROUP/TITLE/USER/NOTES/PASSWD/URL).
func decodeUTF8Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	buf := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		buf = append(buf, r)
		b = b[size:]
	}
	return string(buf)
}

// uuidToBytesLE converts a standard (RFC 4122, big-endian) UUID into the
// little-endian GUID layout the UUID field stores on the wire: the first
// three fields (4+2+2 bytes) are byte-reversed, the trailing 8 bytes
// (clock sequence + node) are left as-is.
func uuidToBytesLE(u uuid.UUID) []byte {
	out := make([]byte, 16)
	reverseCopy(out[0:4], u[0:4])
	reverseCopy(out[4:6], u[4:6])
	reverseCopy(out[6:8], u[6:8])
	copy(out[8:16], u[8:16])
	return out
}

// uuidFromBytesLE is the inverse of uuidToBytesLE.
func uuidFromBytesLE(b []byte) uuid.UUID {
	var u uuid.UUID
	reverseCopy(u[0:4], b[0:4])
	reverseCopy(u[4:6], b[4:6])
	reverseCopy(u[6:8], b[6:8])
	copy(u[8:16], b[8:16])
	return u
}

func reverseCopy(dst, src []byte) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}
