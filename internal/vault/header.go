package vault

import (
	"encoding/binary"

	"pws3vault/internal/tlv"
	"pws3vault/internal/vaultutil"
)

// Header is the dual typed/raw view over a vault's header fields
//. Well-known types (VERSION, LAST_SAVE,
// WHAT_SAVED) get derived string accessors; every other raw type is kept
// untouched for round-tripping.
type Header struct {
	fields *orderedFields
}

func newHeader() *Header {
	return &Header{fields: newOrderedFields()}
}

// AddRawField inserts a field read off the wire into the header.
func (h *Header) AddRawField(f *tlv.Field) {
	h.fields.Set(f)
}

// RawFields returns every header field in insertion order, including
// unrecognized types.
func (h *Header) RawFields() []*tlv.Field {
	return h.fields.Values()
}

// RawField returns the raw field stored for rawType, or nil if absent.
func (h *Header) RawField(rawType uint8) *tlv.Field {
	return h.fields.Get(rawType)
}

// Version interprets the VERSION field (u16 LE) as a four-hex-digit string,
// or "" if absent.
func (h *Header) Version() string {
	f := h.fields.Get(HeaderVersion)
	if f == nil || len(f.Value) < 2 {
		return ""
	}
	v := binary.LittleEndian.Uint16(f.Value)
	return vaultutil.FormatVersion(v)
}

// LastSave interprets the LAST_SAVE field (u32 LE seconds since epoch) as a
// formatted local time string, or "" if absent.
func (h *Header) LastSave() string {
	f := h.fields.Get(HeaderLastSave)
	if f == nil || len(f.Value) < 4 {
		return ""
	}
	ts := binary.LittleEndian.Uint32(f.Value)
	return vaultutil.FormatTimestamp(ts)
}

// WhatSaved interprets the WHAT_SAVED field as UTF-8 text, replacing
// malformed bytes, or "" if absent.
func (h *Header) WhatSaved() string {
	f := h.fields.Get(HeaderWhatSaved)
	if f == nil {
		return ""
	}
	return decodeUTF8Lossy(f.Value)
}

// setLastSave overwrites the LAST_SAVE field, used only by Save.
func (h *Header) setLastSave(epochSeconds uint32) {
	value := make([]byte, 4)
	binary.LittleEndian.PutUint32(value, epochSeconds)
	h.fields.Set(&tlv.Field{Type: HeaderLastSave, Value: value})
}

// setWhatSaved overwrites the WHAT_SAVED field, used only by Save.
func (h *Header) setWhatSaved(producer string) {
	h.fields.Set(&tlv.Field{Type: HeaderWhatSaved, Value: []byte(producer)})
}
