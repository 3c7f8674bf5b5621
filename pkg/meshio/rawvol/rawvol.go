// Package rawvol reads and writes the flat raw-volume format consumed by
// dmc.Build: a small fixed header giving the grid dimensions, followed by
// nx*ny*nz u8 samples in x-fastest, then y, then z order.
package rawvol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// magic identifies a raw-volume file; "RVOL" in ASCII.
var magic = [4]byte{'R', 'V', 'O', 'L'}

// Header describes the grid dimensions of a raw-volume file.
type Header struct {
	NX, NY, NZ int32
}

// Write serializes samples (length NX*NY*NZ) to w as magic + header +
// samples, all little-endian.
func Write(w io.Writer, h Header, samples []uint8) error {
	want := int64(h.NX) * int64(h.NY) * int64(h.NZ)
	if want < 0 || int64(len(samples)) != want {
		return fmt.Errorf("rawvol: samples length %d does not match %dx%dx%d", len(samples), h.NX, h.NY, h.NZ)
	}
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("rawvol: writing magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("rawvol: writing header: %w", err)
	}
	if _, err := w.Write(samples); err != nil {
		return fmt.Errorf("rawvol: writing samples: %w", err)
	}
	return nil
}

// Read parses a raw-volume file previously written by Write.
func Read(r io.Reader) (Header, []uint8, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return Header{}, nil, fmt.Errorf("rawvol: reading magic: %w", err)
	}
	if got != magic {
		return Header{}, nil, fmt.Errorf("rawvol: bad magic %q", got)
	}

	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, nil, fmt.Errorf("rawvol: reading header: %w", err)
	}
	if h.NX < 0 || h.NY < 0 || h.NZ < 0 {
		return Header{}, nil, fmt.Errorf("rawvol: negative dimension in header %+v", h)
	}

	count := int64(h.NX) * int64(h.NY) * int64(h.NZ)
	samples := make([]uint8, count)
	if _, err := io.ReadFull(r, samples); err != nil {
		return Header{}, nil, fmt.Errorf("rawvol: reading samples: %w", err)
	}
	return h, samples, nil
}
