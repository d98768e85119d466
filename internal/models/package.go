package models

import (
	"sort"
	"strings"
)

// PackageInfo describes a single installed package as reported by one
// line of rpm query output. Version is the combined
// [epoch:]version[-release] string.
type PackageInfo struct {
	Name             string
	Version          string
	Arch             string
	RepoID           string
	InstallDate      string // UTC RFC3339, empty when rpm reports none
	InstallDateTimeT int64  // seconds since epoch, 0 when none
}

// EVR is RPM's three-part version: epoch, version, release. Epoch is
// never empty; version and release may be.
type EVR struct {
	Epoch   string
	Version string
	Release string
}

// String renders the EVR back into [epoch:]version[-release] form,
// omitting a zero epoch.
func (e EVR) String() string {
	s := e.Version
	if e.Release != "" {
		s += "-" + e.Release
	}
	if e.Epoch != "" && e.Epoch != "0" {
		s = e.Epoch + ":" + s
	}
	return s
}

// PackageAttrs holds the per-installation attributes recorded for each
// package in the aggregated listing. Epoch and Release are empty when
// the combined version string carried no such component.
type PackageAttrs struct {
	Epoch            string `json:"epoch,omitempty"`
	Version          string `json:"version"`
	Release          string `json:"release,omitempty"`
	Arch             string `json:"arch"`
	InstallDate      string `json:"install_date,omitempty"`
	InstallDateTimeT int64  `json:"install_date_time_t,omitempty"`
}

// ValidAttributes lists the attribute names a caller may select.
var ValidAttributes = []string{
	"epoch",
	"version",
	"release",
	"arch",
	"install_date",
	"install_date_time_t",
}

// IsValidAttribute reports whether name is a selectable attribute.
func IsValidAttribute(name string) bool {
	for _, a := range ValidAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// Select returns the requested subset of attributes as a map suitable
// for serialization. Passing "all" (or nothing) selects everything.
// Unknown names are ignored; validate them beforehand with
// IsValidAttribute.
func (a PackageAttrs) Select(names []string) map[string]interface{} {
	all := len(names) == 0 || (len(names) == 1 && names[0] == "all")

	out := make(map[string]interface{})
	for _, name := range ValidAttributes {
		if !all && !containsString(names, name) {
			continue
		}
		switch name {
		case "epoch":
			if a.Epoch != "" {
				out["epoch"] = a.Epoch
			}
		case "version":
			out["version"] = a.Version
		case "release":
			if a.Release != "" {
				out["release"] = a.Release
			}
		case "arch":
			out["arch"] = a.Arch
		case "install_date":
			if a.InstallDate != "" {
				out["install_date"] = a.InstallDate
			}
		case "install_date_time_t":
			if a.InstallDateTimeT != 0 {
				out["install_date_time_t"] = a.InstallDateTimeT
			}
		}
	}
	return out
}

// VersionString renders the attrs back into the combined
// [epoch:]version[-release] form.
func (a PackageAttrs) VersionString() string {
	return EVR{Epoch: a.Epoch, Version: a.Version, Release: a.Release}.String()
}

// Inventory maps a resolved package name to the attributes of every
// installed instance of that name, sorted by version string.
type Inventory map[string][]PackageAttrs

// Versions flattens the inventory into name -> comma-joined version
// strings, one entry per installed instance.
func (inv Inventory) Versions() map[string]string {
	out := make(map[string]string, len(inv))
	for name, attrs := range inv {
		versions := make([]string, 0, len(attrs))
		for _, a := range attrs {
			versions = append(versions, a.VersionString())
		}
		out[name] = strings.Join(versions, ",")
	}
	return out
}

// Names returns the package names in sorted order.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
