// Package rpmdb provides helpers for interrogating the RPM package
// database through the rpm binary and normalizing its output into
// typed records.
package rpmdb

// Client queries the host RPM database. The host architecture is
// detected on first use and cached for the client's lifetime.
type Client struct {
	runner Runner
	osarch string
}

// NewClient creates a new client. A nil runner selects the default
// exec-based runner.
func NewClient(r Runner) *Client {
	if r == nil {
		r = execRunner{}
	}
	return &Client{runner: r}
}
