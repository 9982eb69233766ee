package bmpsteg

import (
	"fmt"
	"os"
	"path/filepath"
)

// Function variables for testing injection.
var (
	readFile   = os.ReadFile
	createTemp = os.CreateTemp
	syncFile   = func(f *os.File) error { return f.Sync() }
	renameFile = os.Rename
)

const outputPerm os.FileMode = 0o644

// HideFile reads the carrier at carrierPath, hides payload in it and writes
// the result to outPath.
//
// The output is written to a temporary file next to outPath and renamed into
// place, so outPath is either left untouched or holds the complete result.
// Read and write failures are reported as ErrIO wrapping the OS error.
func HideFile(carrierPath, outPath string, payload []byte, opts ...WriteOption) error {
	carrier, err := readFile(carrierPath)
	if err != nil {
		return fmt.Errorf("%w: read carrier: %w", ErrIO, err)
	}
	out, err := Hide(carrier, payload, opts...)
	if err != nil {
		return err
	}
	return writeFileAtomic(outPath, out)
}

// RevealFile reads the carrier at carrierPath and writes the payload hidden in
// it to outPath, with the same all-or-nothing guarantee as HideFile.
func RevealFile(carrierPath, outPath string, opts ...ReadOption) error {
	carrier, err := readFile(carrierPath)
	if err != nil {
		return fmt.Errorf("%w: read carrier: %w", ErrIO, err)
	}
	payload, err := Reveal(carrier, opts...)
	if err != nil {
		return err
	}
	return writeFileAtomic(outPath, payload)
}

func writeFileAtomic(path string, data []byte) (err error) {
	f, err := createTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create output: %w", ErrIO, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: write output: %w", ErrIO, err)
	}
	if err = f.Chmod(outputPerm); err != nil {
		return fmt.Errorf("%w: chmod output: %w", ErrIO, err)
	}
	if err = syncFile(f); err != nil {
		return fmt.Errorf("%w: sync output: %w", ErrIO, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: close output: %w", ErrIO, err)
	}
	if err = renameFile(tmp, path); err != nil {
		return fmt.Errorf("%w: rename output: %w", ErrIO, err)
	}
	return nil
}
