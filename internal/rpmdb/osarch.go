package rpmdb

import (
	"context"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// goArchToRPMArch maps GOARCH values onto the arch names rpm uses, for
// hosts where the rpm binary itself is not available.
var goArchToRPMArch = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7hl",
	"ppc64":   "ppc64",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

// OSArch returns the host CPU architecture as rpm evaluates it. The
// result is detected once per client and cached. When rpm is absent or
// fails the platform architecture is used instead; "unknown" is
// returned when neither path yields anything.
func (c *Client) OSArch(ctx context.Context) string {
	if c.osarch != "" {
		return c.osarch
	}

	var arch string
	out, err := c.runner.Run(ctx, "rpm", "--eval", "%{_host_cpu}")
	if err != nil {
		logrus.Debugf("rpm --eval failed, falling back to the platform arch: %v", err)
		arch = goArchToRPMArch[runtime.GOARCH]
	} else {
		arch = string(out)
	}

	arch = strings.ToLower(strings.TrimSpace(arch))
	if arch == "" {
		arch = "unknown"
	}

	c.osarch = arch
	return c.osarch
}
