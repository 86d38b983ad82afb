package vaultutil

import (
	"fmt"
	"time"
)

// FormatTimestamp renders a u32 seconds-since-epoch value the way the
// LAST_SAVE header field and CREATED/LAST_MOD record fields are displayed,
// or "" for a zero timestamp.
func FormatTimestamp(epochSeconds uint32) string {
	if epochSeconds == 0 {
		return ""
	}
	return time.Unix(int64(epochSeconds), 0).Local().Format("2006-01-02 15:04:05")
}

// FormatVersion renders a little-endian u16 version field as a four-hex-digit
// string.
func FormatVersion(v uint16) string {
	return fmt.Sprintf("%04x", v)
}

// Sizeify converts a byte count to a human-readable string, used by the CLI
// when reporting vault file sizes.
func Sizeify(size int64) string {
	switch {
	case size >= MiB:
		return fmt.Sprintf("%.2f MiB", float64(size)/float64(MiB))
	case size >= KiB:
		return fmt.Sprintf("%.2f KiB", float64(size)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
