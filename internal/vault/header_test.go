package vault

import (
	"encoding/binary"
	"testing"

	"pws3vault/internal/tlv"
)

func TestHeaderUnknownFieldsRoundTrip(t *testing.T) {
	h := newHeader()
	h.AddRawField(&tlv.Field{Type: 0x11, Value: []byte("vendor-extension")})

	if got := h.RawField(0x11); got == nil || string(got.Value) != "vendor-extension" {
		t.Fatal("header did not preserve an unrecognized field type")
	}

	fields := h.RawFields()
	if len(fields) != 1 || fields[0].Type != 0x11 {
		t.Fatalf("RawFields() = %v; want single field of type 0x11", fields)
	}
}

func TestHeaderVersionFormatting(t *testing.T) {
	h := newHeader()
	if h.Version() != "" {
		t.Errorf("Version() on an empty header = %q; want empty", h.Version())
	}

	val := make([]byte, 2)
	binary.LittleEndian.PutUint16(val, 0x0304)
	h.AddRawField(&tlv.Field{Type: HeaderVersion, Value: val})

	if got := h.Version(); got != "0304" {
		t.Errorf("Version() = %q; want %q", got, "0304")
	}
}

func TestHeaderLastSaveAndWhatSavedOverwrittenBySave(t *testing.T) {
	h := newHeader()
	h.AddRawField(&tlv.Field{Type: HeaderLastSave, Value: []byte{0, 0, 0, 0}})
	h.AddRawField(&tlv.Field{Type: HeaderWhatSaved, Value: []byte("stale producer")})

	h.setLastSave(12345)
	h.setWhatSaved(ProducerVersion)

	if h.WhatSaved() != ProducerVersion {
		t.Errorf("WhatSaved() = %q; want %q", h.WhatSaved(), ProducerVersion)
	}
	val := make([]byte, 4)
	binary.LittleEndian.PutUint32(val, 12345)
	if f := h.RawField(HeaderLastSave); string(f.Value) != string(val) {
		t.Error("setLastSave did not overwrite the LAST_SAVE raw field")
	}
}

func TestHeaderPreservesInsertionOrderOnReplace(t *testing.T) {
	h := newHeader()
	h.AddRawField(&tlv.Field{Type: HeaderVersion, Value: []byte{1, 0}})
	h.AddRawField(&tlv.Field{Type: HeaderLastSave, Value: []byte{0, 0, 0, 0}})
	h.AddRawField(&tlv.Field{Type: HeaderWhatSaved, Value: []byte("x")})

	// Replacing an existing type must not move its position.
	h.AddRawField(&tlv.Field{Type: HeaderLastSave, Value: []byte{9, 9, 9, 9}})

	fields := h.RawFields()
	if len(fields) != 3 {
		t.Fatalf("len(RawFields()) = %d; want 3", len(fields))
	}
	wantOrder := []uint8{HeaderVersion, HeaderLastSave, HeaderWhatSaved}
	for i, f := range fields {
		if f.Type != wantOrder[i] {
			t.Errorf("RawFields()[%d].Type = 0x%02x; want 0x%02x", i, f.Type, wantOrder[i])
		}
	}
	if fields[1].Value[0] != 9 {
		t.Error("replacing LAST_SAVE did not update its value in place")
	}
}
