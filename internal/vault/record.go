package vault

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	"pws3vault/internal/tlv"
)

// Record is one password entry: the dual typed/raw view over a fixed set of
// well-known field types plus any unrecognized ones, which round-trip
// verbatim.
type Record struct {
	fields *orderedFields

	hasUUID  bool
	uuid     uuid.UUID
	group    string
	title    string
	user     string
	notes    string
	passwd   string
	created  uint32
	lastMod  uint32
	url      string
}

func newRecord() *Record {
	return &Record{fields: newOrderedFields()}
}

// NewRecord creates a fresh record with a new UUID and CREATED/LAST_MOD set
// to now.
func NewRecord() *Record {
	r := newRecord()
	now := uint32(time.Now().Unix())
	r.SetUUID(uuid.New())
	r.SetCreated(now)
	r.SetLastMod(now)
	return r
}

// AddRawField ingests one field read off the wire, updating both the raw
// map and any corresponding typed cache.
func (r *Record) AddRawField(f *tlv.Field) {
	r.fields.Set(f)
	switch f.Type {
	case FieldUUID:
		if len(f.Value) == 16 {
			r.hasUUID = true
			r.uuid = uuidFromBytesLE(f.Value)
		}
	case FieldGroup:
		r.group = decodeUTF8Lossy(f.Value)
	case FieldTitle:
		r.title = decodeUTF8Lossy(f.Value)
	case FieldUser:
		r.user = decodeUTF8Lossy(f.Value)
	case FieldNotes:
		r.notes = decodeUTF8Lossy(f.Value)
	case FieldPasswd:
		r.passwd = decodeUTF8Lossy(f.Value)
	case FieldCreated:
		if len(f.Value) == 4 {
			r.created = binary.LittleEndian.Uint32(f.Value)
		}
	case FieldLastMod:
		if len(f.Value) == 4 {
			r.lastMod = binary.LittleEndian.Uint32(f.Value)
		}
	case FieldURL:
		r.url = decodeUTF8Lossy(f.Value)
	}
}

// RawFields returns every field in insertion order.
func (r *Record) RawFields() []*tlv.Field {
	return r.fields.Values()
}

// RawField returns the raw field stored for rawType, or nil if absent.
func (r *Record) RawField(rawType uint8) *tlv.Field {
	return r.fields.Get(rawType)
}

func (r *Record) markModified() {
	r.SetLastMod(uint32(time.Now().Unix()))
}

// UUID returns the record's UUID and whether one is set.
func (r *Record) UUID() (uuid.UUID, bool) { return r.uuid, r.hasUUID }

// SetUUID replaces the UUID field and bumps LAST_MOD.
func (r *Record) SetUUID(u uuid.UUID) {
	r.uuid = u
	r.hasUUID = true
	r.fields.Set(&tlv.Field{Type: FieldUUID, Value: uuidToBytesLE(u)})
	r.markModified()
}

func (r *Record) Group() string { return r.group }

// SetGroup replaces GROUP and bumps LAST_MOD.
func (r *Record) SetGroup(v string) {
	r.group = v
	r.fields.Set(&tlv.Field{Type: FieldGroup, Value: []byte(v)})
	r.markModified()
}

func (r *Record) Title() string { return r.title }

// SetTitle replaces TITLE and bumps LAST_MOD.
func (r *Record) SetTitle(v string) {
	r.title = v
	r.fields.Set(&tlv.Field{Type: FieldTitle, Value: []byte(v)})
	r.markModified()
}

func (r *Record) User() string { return r.user }

// SetUser replaces USER and bumps LAST_MOD.
func (r *Record) SetUser(v string) {
	r.user = v
	r.fields.Set(&tlv.Field{Type: FieldUser, Value: []byte(v)})
	r.markModified()
}

func (r *Record) Notes() string { return r.notes }

// SetNotes replaces NOTES and bumps LAST_MOD.
func (r *Record) SetNotes(v string) {
	r.notes = v
	r.fields.Set(&tlv.Field{Type: FieldNotes, Value: []byte(v)})
	r.markModified()
}

func (r *Record) Passwd() string { return r.passwd }

// SetPasswd replaces PASSWD and bumps LAST_MOD.
func (r *Record) SetPasswd(v string) {
	r.passwd = v
	r.fields.Set(&tlv.Field{Type: FieldPasswd, Value: []byte(v)})
	r.markModified()
}

func (r *Record) URL() string { return r.url }

// SetURL replaces URL and bumps LAST_MOD.
func (r *Record) SetURL(v string) {
	r.url = v
	r.fields.Set(&tlv.Field{Type: FieldURL, Value: []byte(v)})
	r.markModified()
}

// Created returns the CREATED timestamp (u32 seconds since epoch).
func (r *Record) Created() uint32 { return r.created }

// SetCreated replaces CREATED. Unlike every other setter, this does NOT
// bump LAST_MOD.
func (r *Record) SetCreated(epochSeconds uint32) {
	r.created = epochSeconds
	value := make([]byte, 4)
	binary.LittleEndian.PutUint32(value, epochSeconds)
	r.fields.Set(&tlv.Field{Type: FieldCreated, Value: value})
}

// LastMod returns the LAST_MOD timestamp (u32 seconds since epoch).
func (r *Record) LastMod() uint32 { return r.lastMod }

// SetLastMod replaces LAST_MOD directly without recursing into
// markModified.
func (r *Record) SetLastMod(epochSeconds uint32) {
	r.lastMod = epochSeconds
	value := make([]byte, 4)
	binary.LittleEndian.PutUint32(value, epochSeconds)
	r.fields.Set(&tlv.Field{Type: FieldLastMod, Value: value})
}

// IsCorresponding reports whether r and other are the same logical record:
// UUID-equal when both have one, title-equal otherwise.
func (r *Record) IsCorresponding(other *Record) bool {
	if !r.hasUUID || !other.hasUUID {
		return r.title == other.title
	}
	return r.uuid == other.uuid
}

// IsNewerThan reports whether r's LAST_MOD strictly exceeds other's.
func (r *Record) IsNewerThan(other *Record) bool {
	return r.lastMod > other.lastMod
}

// Merge replaces all of r's raw fields with other's, re-driving every typed
// view through AddRawField.
func (r *Record) Merge(other *Record) {
	r.fields.Clear()
	r.hasUUID = false
	r.group, r.title, r.user, r.notes, r.passwd, r.url = "", "", "", "", "", ""
	r.created, r.lastMod = 0, 0
	for _, f := range other.RawFields() {
		r.AddRawField(f)
	}
}

// Duplicate returns a copy of r with a new UUID, fresh CREATED/LAST_MOD
// timestamps, and " (copy)" appended to the title. It merges the source
// record's raw fields first, so unrecognized field types propagate to the
// copy, and only then overwrites identity and timestamps.
func Duplicate(r *Record) *Record {
	out := newRecord()
	out.Merge(r)
	now := uint32(time.Now().Unix())
	out.SetUUID(uuid.New())
	out.SetTitle(r.title + " (copy)")
	out.SetCreated(now)
	out.SetLastMod(now)
	return out
}
