// Package vaultutil provides shared constants and display-formatting
// helpers for the vault codec and its CLI consumer.
package vaultutil

// MinKeystretchIterations is the V3 floor for f_iter. Any vault whose
// stored iteration count is lower is silently raised to this value on
// save.
//
// The original minimum was 2,048. As of file format 0x030F the minimum is
// 262,144; older databases are upgraded to this value when saved.
const MinKeystretchIterations = 262144

// FileMagic is the 4-byte tag that opens every V3 container.
var FileMagic = [4]byte{'P', 'W', 'S', '3'}

// EOFMarker is the literal 16-byte marker, written in the clear, that
// terminates the field stream.
var EOFMarker = [16]byte{'P', 'W', 'S', '3', '-', 'E', 'O', 'F', 'P', 'W', 'S', '3', '-', 'E', 'O', 'F'}

// Byte-size constants, reused by CLI reporting.
const (
	KiB = 1 << 10
	MiB = 1 << 20
)
