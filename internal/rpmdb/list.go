package rpmdb

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ralt/rpmq/internal/models"
	"github.com/sirupsen/logrus"
)

// gpgPubkeyPrefix marks the pseudo-packages rpm records for imported
// signing keys. They are not installable software and are filtered out
// of listings.
const gpgPubkeyPrefix = "gpg-pubkey"

// ListOptions configures an installed-package listing
type ListOptions struct {
	Root string // operate on a different root directory
}

// List returns every installed package keyed by its resolved name,
// with the attributes of each installed instance sorted by version
// string. The sort is plain lexical ordering, not rpm version
// comparison; use CompareEVR for real ordering.
func (c *Client) List(ctx context.Context, opts ListOptions) (models.Inventory, error) {
	osarch := c.OSArch(ctx)

	// Direct rpm queries have no repo context, so REPOID is pinned to
	// the placeholder.
	args := []string{
		"-qa", "--nodigest", "--nosignature",
		"--queryformat", strings.ReplaceAll(QueryFormat, "%{REPOID}", none) + "\n",
	}
	if opts.Root != "" {
		args = append(args, "--root", opts.Root)
	}

	out, err := c.runner.Run(ctx, "rpm", args...)
	if err != nil {
		return nil, &models.RPMQError{
			Type: models.ErrQuery,
			Err:  fmt.Errorf("rpm -qa failed: %w", err),
		}
	}

	ret := make(models.Inventory)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		info, err := ParseLine(line, osarch)
		if err != nil {
			return nil, err
		}
		if info == nil {
			logrus.Debugf("Skipping malformed rpm output line: %q", line)
			continue
		}

		// Split the combined version back into its parts. See the rpm
		// version string rules at
		// https://rpm-software-management.github.io/rpm/manual/dependencies.html
		pkgver := info.Version
		var epoch, release string
		if i := strings.Index(pkgver, ":"); i != -1 {
			epoch, pkgver = pkgver[:i], pkgver[i+1:]
		}
		if i := strings.Index(pkgver, "-"); i != -1 {
			pkgver, release = pkgver[:i], pkgver[i+1:]
		}

		ret[info.Name] = append(ret[info.Name], models.PackageAttrs{
			Epoch:            epoch,
			Version:          pkgver,
			Release:          release,
			Arch:             info.Arch,
			InstallDate:      info.InstallDate,
			InstallDateTimeT: info.InstallDateTimeT,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &models.RPMQError{Type: models.ErrParse, Err: err}
	}

	filtered := make(models.Inventory, len(ret))
	for name, attrs := range ret {
		// Filter out GPG public key packages
		if strings.HasPrefix(name, gpgPubkeyPrefix) {
			continue
		}
		sort.SliceStable(attrs, func(i, j int) bool {
			return attrs[i].Version < attrs[j].Version
		})
		filtered[name] = attrs
	}

	logrus.Debugf("Found %d installed packages", len(filtered))
	return filtered, nil
}

// Versions lists installed packages as a name to comma-joined version
// string map, the compact form used when no attributes are requested.
func (c *Client) Versions(ctx context.Context, root string) (map[string]string, error) {
	inv, err := c.List(ctx, ListOptions{Root: root})
	if err != nil {
		return nil, err
	}
	return inv.Versions(), nil
}
