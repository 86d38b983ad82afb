package vault

import (
	"encoding/binary"
	"time"

	"pws3vault/internal/vaultcrypto"
)

func nowUnix() int64 {
	return time.Now().Unix()
}

func leUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func leUint32Bytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// stretch is a thin adapter from the fixed-size array vaultcrypto.Stretch
// returns to the slice form the envelope code passes to HMAC/ECB.
func stretch(password, salt []byte, iterations uint32) []byte {
	out := vaultcrypto.Stretch(password, salt, iterations)
	return out[:]
}

func zeroAll(slices ...[]byte) {
	vaultcrypto.ZeroAll(slices...)
}
