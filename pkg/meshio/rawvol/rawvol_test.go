package rawvol

import (
	"bytes"
	"reflect"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	h := Header{NX: 2, NY: 2, NZ: 2}
	samples := []uint8{1, 2, 3, 4, 5, 6, 7, 8}

	var buf bytes.Buffer
	if err := Write(&buf, h, samples); err != nil {
		t.Fatalf("Write: %v", err)
	}

	gotH, gotSamples, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if gotH != h {
		t.Errorf("Read header = %+v, want %+v", gotH, h)
	}
	if !reflect.DeepEqual(gotSamples, samples) {
		t.Errorf("Read samples = %v, want %v", gotSamples, samples)
	}
}

func TestWriteRejectsLengthMismatch(t *testing.T) {
	h := Header{NX: 2, NY: 2, NZ: 2}
	var buf bytes.Buffer
	if err := Write(&buf, h, []uint8{1, 2, 3}); err == nil {
		t.Error("expected error for samples length mismatch")
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("NOPE0000")
	if _, _, err := Read(buf); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestReadRejectsTruncatedSamples(t *testing.T) {
	h := Header{NX: 2, NY: 2, NZ: 2}
	var buf bytes.Buffer
	if err := Write(&buf, h, make([]uint8, 8)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	if _, _, err := Read(truncated); err == nil {
		t.Error("expected error for truncated samples")
	}
}
