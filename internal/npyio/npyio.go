// Package npyio writes float64 arrays in NumPy's .npy and .npz formats.
package npyio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

var order = binary.LittleEndian

// Array is a row-major float64 array of the given shape.
type Array struct {
	Shape []int
	Data  []float64
}

// Vector returns a 1-D Array.
func Vector(v []float64) Array {
	return Array{Shape: []int{len(v)}, Data: v}
}

// Matrix returns a 2-D Array. All rows must have the same length.
func Matrix(rows [][]float64) (Array, error) {
	nCols := 0
	if len(rows) > 0 {
		nCols = len(rows[0])
	}

	data := make([]float64, 0, len(rows)*nCols)
	for i, row := range rows {
		if len(row) != nCols {
			return Array{}, errors.Errorf("row %d has %d columns, expected %d", i, len(row), nCols)
		}
		data = append(data, row...)
	}

	return Array{Shape: []int{len(rows), nCols}, Data: data}, nil
}

func (a Array) numElements() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// Write encodes a as a .npy file.
func Write(w io.Writer, a Array) error {
	if a.numElements() != len(a.Data) {
		return errors.Errorf("shape %v does not match %d elements", a.Shape, len(a.Data))
	}

	if err := writeHeader(w, a.Shape); err != nil {
		return err
	}

	var buf [8]byte
	for _, x := range a.Data {
		order.PutUint64(buf[:], math.Float64bits(x))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	return nil
}

// The following is adapted from: github.com/sbinet/npyio
var magic = [6]byte{'\x93', 'N', 'U', 'M', 'P', 'Y'}

const (
	majorVersion = byte(2)
	minorVersion = byte(0)
	// Magic, version and the uint32 header length precede the header.
	preambleLen = len(magic) + 2 + 4
	headerAlign = 64
)

func writeHeader(w io.Writer, shape []int) error {
	if err := binary.Write(w, order, magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, majorVersion); err != nil {
		return err
	}
	if err := binary.Write(w, order, minorVersion); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf,
		"{'descr': '<f8', 'fortran_order': False, 'shape': %s, }",
		shapeString(shape))

	// Pad with spaces so the data starts on an aligned offset; the header
	// ends with a newline.
	padding := (headerAlign - (preambleLen+buf.Len()+1)%headerAlign) % headerAlign
	buf.Write(bytes.Repeat([]byte{'\x20'}, padding))
	buf.WriteByte('\n')

	buflen := int64(buf.Len())
	if err := binary.Write(w, order, uint32(buflen)); err != nil {
		return err
	}

	if n, err := io.Copy(w, buf); err != nil {
		return err
	} else if n < buflen {
		return io.ErrShortWrite
	}

	return nil
}

// shapeString formats shape as a Python tuple.
func shapeString(shape []int) string {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = fmt.Sprint(d)
	}

	if len(dims) == 1 {
		return "(" + dims[0] + ",)"
	}
	return "(" + strings.Join(dims, ", ") + ")"
}
