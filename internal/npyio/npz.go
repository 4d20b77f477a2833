package npyio

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// WriteNPZ writes each array as <name>.npy into a zip archive.
func WriteNPZ(w io.Writer, arrays map[string]Array) error {
	z := zip.NewWriter(w)

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f, err := z.Create(name + ".npy")
		if err != nil {
			return err
		}

		if err := Write(f, arrays[name]); err != nil {
			return errors.Wrapf(err, "writing %v", name)
		}
	}

	return z.Close()
}

// MakeNPZ writes arrays to a new .npz file at output.
func MakeNPZ(output string, arrays map[string]Array) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	b := bufio.NewWriter(f)
	if err := WriteNPZ(b, arrays); err != nil {
		return err
	}

	if err := b.Flush(); err != nil {
		return err
	}

	return f.Close()
}
