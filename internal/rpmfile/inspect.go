package rpmfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ralt/rpmq/internal/models"
	"github.com/ralt/rpmq/internal/utils"
	"github.com/sassoftware/go-rpmutils"
)

// Inspect parses an RPM file and extracts its header metadata
func Inspect(path string) (*models.FilePackage, error) {
	// Calculate checksum
	checksum, err := utils.FileChecksum(path)
	if err != nil {
		return nil, &models.RPMQError{
			Type:    models.ErrInspect,
			Package: path,
			Err:     fmt.Errorf("failed to calculate checksum: %w", err),
		}
	}

	// Open RPM file
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read RPM header
	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, &models.RPMQError{
			Type:    models.ErrInspect,
			Package: path,
			Err:     fmt.Errorf("failed to read RPM: %w", err),
		}
	}

	// Extract metadata
	pkg := &models.FilePackage{
		Name:      getStringTag(rpm, rpmutils.NAME),
		Version:   getStringTag(rpm, rpmutils.VERSION),
		Release:   getStringTag(rpm, rpmutils.RELEASE),
		Arch:      getStringTag(rpm, rpmutils.ARCH),
		Summary:   getStringTag(rpm, rpmutils.SUMMARY),
		License:   getStringTag(rpm, rpmutils.LICENSE),
		Packager:  getStringTag(rpm, rpmutils.PACKAGER),
		URL:       getStringTag(rpm, rpmutils.URL),
		SourceRPM: getStringTag(rpm, rpmutils.SOURCERPM),
		BuildTime: getIntTag(rpm, rpmutils.BUILDTIME),
	}

	// The epoch tag is absent on most packages; keep it empty rather
	// than defaulting so the distinction survives into the output.
	if _, err := rpm.Header.Get(rpmutils.EPOCH); err == nil {
		pkg.Epoch = strconv.FormatInt(getIntTag(rpm, rpmutils.EPOCH), 10)
	}

	// Set file information
	pkg.Filename = path
	pkg.Size = checksum.Size
	pkg.SHA256Sum = checksum.SHA256

	return pkg, nil
}

// getStringTag safely gets a string tag from RPM
func getStringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	// Handle different types that might be returned
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	default:
		// Try to convert to string using fmt
		return fmt.Sprintf("%v", v)
	}

	return ""
}

// getIntTag safely gets an integer tag from RPM
func getIntTag(rpm *rpmutils.Rpm, tag int) int64 {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return 0
	}
	switch v := val.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint32:
		return int64(v)
	case []int32:
		if len(v) > 0 {
			return int64(v[0])
		}
	case []int64:
		if len(v) > 0 {
			return v[0]
		}
	case []uint32:
		if len(v) > 0 {
			return int64(v[0])
		}
	case []string:
		if len(v) > 0 {
			if n, err := strconv.ParseInt(strings.TrimSpace(v[0]), 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}
