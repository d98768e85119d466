package rpmdb

import (
	version "github.com/knqyf263/go-rpm-version"
)

// CompareEVR compares two [epoch:]version[-release] strings using rpm
// ordering rules. It returns -1, 0 or 1 as a sorts before, equal to or
// after b.
func CompareEVR(a, b string) int {
	return version.NewVersion(a).Compare(version.NewVersion(b))
}
