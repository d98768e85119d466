package models

// FilePackage describes the header metadata of a local .rpm file, the
// file-level counterpart of a PackageInfo read from the database.
type FilePackage struct {
	Name      string `json:"name"`
	Epoch     string `json:"epoch,omitempty"`
	Version   string `json:"version"`
	Release   string `json:"release,omitempty"`
	Arch      string `json:"arch"`
	Summary   string `json:"summary,omitempty"`
	License   string `json:"license,omitempty"`
	Packager  string `json:"packager,omitempty"`
	URL       string `json:"url,omitempty"`
	SourceRPM string `json:"source_rpm,omitempty"`
	BuildTime int64  `json:"build_time,omitempty"`

	// File information
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	SHA256Sum string `json:"sha256"`
}

// EVR returns the package's epoch/version/release triple. A file with
// no epoch tag gets the default "0".
func (p *FilePackage) EVR() EVR {
	epoch := p.Epoch
	if epoch == "" {
		epoch = "0"
	}
	return EVR{Epoch: epoch, Version: p.Version, Release: p.Release}
}
