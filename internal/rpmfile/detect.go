// Package rpmfile reads metadata out of local .rpm package files,
// without involving the RPM database.
package rpmfile

import (
	"bytes"
	"os"
	"path/filepath"
)

// rpmMagic is the lead magic of every RPM package file.
var rpmMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

// IsRPM determines whether path looks like an RPM package, based on the
// lead magic bytes with the file extension as fallback.
func IsRPM(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(rpmMagic))
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return false, err
	}
	header = header[:n]

	if bytes.HasPrefix(header, rpmMagic) {
		return true, nil
	}
	return filepath.Ext(path) == ".rpm", nil
}
