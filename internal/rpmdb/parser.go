package rpmdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ralt/rpmq/internal/models"
)

// QueryFormat is the rpm --queryformat template whose output ParseLine
// understands. The _|- separator is chosen to never collide with real
// field content. EPOCHNUM would be simpler but is not present on older
// rpm versions.
const QueryFormat = "%{NAME}_|-%{EPOCH}_|-%{VERSION}_|-%{RELEASE}_|-%{ARCH}_|-%{REPOID}_|-%{INSTALLTIME}"

const fieldSeparator = "_|-"

// none is the placeholder rpm prints for absent fields.
const none = "(none)"

// ParseLine parses one line of rpm/repoquery output produced with
// QueryFormat. A line with the wrong field count returns (nil, nil) so
// the caller can skip it; a non-integer install time is a hard error.
func ParseLine(line, osarch string) (*models.PackageInfo, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 7 {
		// Should not happen with the queryformat in use, but rpm
		// output is not trusted blindly.
		return nil, nil
	}
	name, epoch, version, release := fields[0], fields[1], fields[2], fields[3]
	arch, repoID, installTime := fields[4], fields[5], fields[6]

	name = ResolveName(name, arch, osarch)
	if release != "" {
		version += "-" + release
	}
	if epoch != none && epoch != "0" {
		version = epoch + ":" + version
	}

	info := &models.PackageInfo{
		Name:    name,
		Version: version,
		Arch:    arch,
		RepoID:  repoID,
	}

	if installTime != none && installTime != "0" {
		t, err := strconv.ParseInt(installTime, 10, 64)
		if err != nil {
			return nil, &models.RPMQError{
				Type:    models.ErrParse,
				Package: name,
				Err:     fmt.Errorf("invalid install time %q: %w", installTime, err),
			}
		}
		info.InstallDate = time.Unix(t, 0).UTC().Format(time.RFC3339)
		info.InstallDateTimeT = t
	}

	return info, nil
}

// VersionToEVR splits a combined package version string into epoch,
// version and release. The epoch is never empty and defaults to "0",
// also when the text before the first ":" is not an integer; version
// and release are empty when the string has no such component. Only
// the first ":" and "-" act as delimiters, later occurrences are kept
// verbatim in the trailing component.
func VersionToEVR(verstring string) models.EVR {
	if verstring == "" {
		return models.EVR{Epoch: "0"}
	}

	epoch := "0"
	idxE := strings.Index(verstring, ":")
	if idxE != -1 {
		if n, err := strconv.Atoi(verstring[:idxE]); err == nil {
			epoch = strconv.Itoa(n)
		}
		// Garbage in the epoch field falls back to "0".
	}

	var version, release string
	idxR := strings.Index(verstring, "-")
	if idxR != -1 {
		if idxE+1 <= idxR {
			version = verstring[idxE+1 : idxR]
		}
		release = verstring[idxR+1:]
	} else {
		version = verstring[idxE+1:]
	}

	return models.EVR{Epoch: epoch, Version: version, Release: release}
}
