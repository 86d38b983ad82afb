package vault

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pws3vault/internal/tlv"
)

func TestNewRecordHasFreshIdentity(t *testing.T) {
	before := uint32(time.Now().Unix())
	r := NewRecord()
	after := uint32(time.Now().Unix())

	if _, ok := r.UUID(); !ok {
		t.Fatal("NewRecord did not set a UUID")
	}
	if r.Created() < before || r.Created() > after {
		t.Errorf("Created() = %d; want between %d and %d", r.Created(), before, after)
	}
	if r.LastMod() != r.Created() {
		t.Errorf("LastMod() = %d; want equal to Created() = %d", r.LastMod(), r.Created())
	}
}

func TestTypedRawConsistency(t *testing.T) {
	r := NewRecord()
	r.SetTitle("Gmail")
	r.SetUser("alice")
	r.SetPasswd("hunter2")
	r.SetURL("https://mail.google.com")
	r.SetNotes("line1\nline2")
	r.SetGroup("Email")

	checks := map[uint8]string{
		FieldTitle:  r.Title(),
		FieldUser:   r.User(),
		FieldPasswd: r.Passwd(),
		FieldURL:    r.URL(),
		FieldNotes:  r.Notes(),
		FieldGroup:  r.Group(),
	}
	for rawType, want := range checks {
		f := r.RawField(rawType)
		if f == nil {
			t.Fatalf("raw field 0x%02x missing", rawType)
		}
		if string(f.Value) != want {
			t.Errorf("raw field 0x%02x = %q; want %q", rawType, f.Value, want)
		}
	}
}

func TestSetterBumpsLastModExceptTimestamps(t *testing.T) {
	r := NewRecord()
	r.SetLastMod(1000)
	r.SetCreated(1000)

	before := uint32(time.Now().Unix())
	r.SetTitle("new title")
	if r.LastMod() < before {
		t.Errorf("SetTitle did not bump LastMod: got %d, want >= %d", r.LastMod(), before)
	}

	r.SetLastMod(2000)
	if r.LastMod() != 2000 {
		t.Errorf("SetLastMod should set LastMod directly without re-bumping, got %d", r.LastMod())
	}

	r.SetCreated(3000)
	if r.LastMod() != 2000 {
		t.Errorf("SetCreated must not bump LastMod, got %d", r.LastMod())
	}
}

func TestIsCorrespondingPrefersUUID(t *testing.T) {
	a := NewRecord()
	a.SetTitle("Same Title")
	b := NewRecord()
	b.SetTitle("Same Title")

	if a.IsCorresponding(b) {
		t.Error("records with different UUIDs but the same title should not correspond")
	}

	sharedUUID, _ := a.UUID()
	b.SetUUID(sharedUUID)
	if !a.IsCorresponding(b) {
		t.Error("records sharing a UUID should correspond regardless of title")
	}
}

func TestIsCorrespondingFallsBackToTitle(t *testing.T) {
	a := newRecord()
	a.SetTitle("Shared")
	b := newRecord()
	b.SetTitle("Shared")

	if !a.IsCorresponding(b) {
		t.Error("records without UUIDs but matching titles should correspond")
	}

	b.SetTitle("Different")
	if a.IsCorresponding(b) {
		t.Error("records without UUIDs and different titles should not correspond")
	}
}

func TestIsNewerThan(t *testing.T) {
	a := newRecord()
	a.SetLastMod(200)
	b := newRecord()
	b.SetLastMod(100)

	if !a.IsNewerThan(b) {
		t.Error("a should be newer than b")
	}
	if b.IsNewerThan(a) {
		t.Error("b should not be newer than a")
	}
}

func TestMergeReplacesAllRawFields(t *testing.T) {
	src := NewRecord()
	src.SetTitle("Source")
	src.AddRawField(&tlv.Field{Type: 0x42, Value: []byte("unknown-but-preserved")})

	dst := NewRecord()
	dst.SetTitle("Destination")
	dst.SetNotes("will be wiped")

	dst.Merge(src)

	if dst.Title() != "Source" {
		t.Errorf("Title() = %q after merge; want %q", dst.Title(), "Source")
	}
	if dst.Notes() != "" {
		t.Errorf("Notes() = %q after merge; want empty (not in source)", dst.Notes())
	}
	if f := dst.RawField(0x42); f == nil || string(f.Value) != "unknown-but-preserved" {
		t.Error("merge did not propagate unknown field type 0x42")
	}
}

func TestDuplicate(t *testing.T) {
	src := NewRecord()
	src.SetTitle("Original")
	src.SetUser("bob")
	src.AddRawField(&tlv.Field{Type: 0x50, Value: []byte("custom")})

	time.Sleep(1100 * time.Millisecond) // ensure a distinguishable timestamp

	dup := Duplicate(src)

	srcUUID, _ := src.UUID()
	dupUUID, _ := dup.UUID()
	if srcUUID == dupUUID {
		t.Error("duplicate must have a different UUID")
	}
	if dup.Title() != "Original (copy)" {
		t.Errorf("Title() = %q; want %q", dup.Title(), "Original (copy)")
	}
	if dup.User() != "bob" {
		t.Errorf("User() = %q; want %q (carried over from source)", dup.User(), "bob")
	}
	if f := dup.RawField(0x50); f == nil || string(f.Value) != "custom" {
		t.Error("duplicate did not propagate unknown field type 0x50")
	}
	if dup.Created() != dup.LastMod() {
		t.Error("duplicate's Created and LastMod should both be the duplication time")
	}
	if dup.Created() == src.Created() {
		t.Error("duplicate's Created should be reset, not copied from source")
	}
}

func TestUUIDBytesLERoundTrip(t *testing.T) {
	u := uuid.New()
	le := uuidToBytesLE(u)
	if len(le) != 16 {
		t.Fatalf("uuidToBytesLE returned %d bytes; want 16", len(le))
	}
	back := uuidFromBytesLE(le)
	if back != u {
		t.Errorf("uuidFromBytesLE(uuidToBytesLE(u)) = %v; want %v", back, u)
	}
}
