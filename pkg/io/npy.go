package io

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// npyMagic starts every .npy file, followed by the format version 1.0.
const npyMagic = "\x93NUMPY\x01\x00"

// WriteNPY encodes m as a NumPy .npy file (format version 1.0): a
// little-endian int64 array of shape (N, N) in C order, loadable with
// numpy.load.
func WriteNPY(m Matrix, w io.Writer) error {
	n := m.Size()
	header := fmt.Sprintf("{'descr': '<i8', 'fortran_order': False, 'shape': (%d, %d), }", n, n)

	// Magic, version and the 2-byte length precede the header; the total
	// preamble is padded with spaces to a multiple of 64 and ends in '\n'.
	const preamble = len(npyMagic) + 2
	pad := 64 - (preamble+len(header)+1)%64
	if pad == 64 {
		pad = 0
	}
	header += strings.Repeat(" ", pad) + "\n"

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(npyMagic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(len(header))); err != nil {
		return err
	}
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	for i, row := range m.Data {
		if len(row) != n {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), n)
		}
		if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
