package rpmdb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ralt/rpmq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner serves canned rpm output, keyed on the first argument.
type fakeRunner struct {
	evalOutput  string
	evalErr     error
	queryOutput string
	queryErr    error
	calls       [][]string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) > 0 && args[0] == "--eval" {
		return []byte(f.evalOutput), f.evalErr
	}
	return []byte(f.queryOutput), f.queryErr
}

func (f *fakeRunner) queryArgs() []string {
	for _, call := range f.calls {
		if len(call) > 1 && call[1] == "-qa" {
			return call
		}
	}
	return nil
}

const sampleQueryOutput = `kernel_|-0_|-4.18.0_|-80.el8_|-x86_64_|-(none)_|-1500000000
kernel_|-0_|-5.14.0_|-70.el9_|-x86_64_|-(none)_|-1600000000
bash_|-(none)_|-5.1.8_|-6.el9_|-x86_64_|-(none)_|-(none)
libgcc_|-(none)_|-11.2.1_|-9.4.el9_|-i686_|-(none)_|-(none)
tzdata_|-1_|-2021e_|-1.el9_|-noarch_|-(none)_|-1640000000
gpg-pubkey_|-(none)_|-d34028c4_|-5b64c40b_|-(none)_|-(none)_|-1600000000
this line is garbage
`

func newTestClient(f *fakeRunner) *Client {
	if f.evalOutput == "" {
		f.evalOutput = "x86_64\n"
	}
	return NewClient(f)
}

func TestList(t *testing.T) {
	runner := &fakeRunner{queryOutput: sampleQueryOutput}
	client := newTestClient(runner)

	inv, err := client.List(context.Background(), ListOptions{})
	require.NoError(t, err)

	// gpg-pubkey pseudo-packages are dropped, the garbage line is
	// skipped, everything else survives.
	assert.ElementsMatch(t, []string{"kernel", "bash", "libgcc.i686", "tzdata"}, inv.Names())

	kernel := inv["kernel"]
	require.Len(t, kernel, 2)
	assert.Equal(t, "4.18.0", kernel[0].Version)
	assert.Equal(t, "80.el8", kernel[0].Release)
	assert.Equal(t, "5.14.0", kernel[1].Version)
	assert.Equal(t, int64(1600000000), kernel[1].InstallDateTimeT)
	assert.Equal(t, "2020-09-13T12:26:40Z", kernel[1].InstallDate)

	bash := inv["bash"]
	require.Len(t, bash, 1)
	assert.Empty(t, bash[0].Epoch)
	assert.Equal(t, "5.1.8", bash[0].Version)
	assert.Equal(t, "6.el9", bash[0].Release)
	assert.Equal(t, "x86_64", bash[0].Arch)
	assert.Empty(t, bash[0].InstallDate)

	tzdata := inv["tzdata"]
	require.Len(t, tzdata, 1)
	assert.Equal(t, "1", tzdata[0].Epoch)
	assert.Equal(t, "2021e", tzdata[0].Version)
	assert.Equal(t, "noarch", tzdata[0].Arch)
}

func TestListQueryArguments(t *testing.T) {
	runner := &fakeRunner{queryOutput: ""}
	client := newTestClient(runner)

	_, err := client.List(context.Background(), ListOptions{})
	require.NoError(t, err)

	args := runner.queryArgs()
	require.NotNil(t, args)
	assert.Equal(t, "rpm", args[0])
	assert.Contains(t, args, "--nodigest")
	assert.Contains(t, args, "--nosignature")
	assert.NotContains(t, args, "--root")

	// REPOID is pinned to the placeholder and the template is
	// newline-terminated.
	format := args[len(args)-1]
	assert.NotContains(t, format, "%{REPOID}")
	assert.Contains(t, format, "_|-(none)_|-")
	assert.True(t, strings.HasSuffix(format, "\n"))
}

func TestListRoot(t *testing.T) {
	runner := &fakeRunner{queryOutput: ""}
	client := newTestClient(runner)

	_, err := client.List(context.Background(), ListOptions{Root: "/mnt/sysimage"})
	require.NoError(t, err)

	args := runner.queryArgs()
	require.NotNil(t, args)
	assert.Contains(t, args, "--root")
	assert.Contains(t, args, "/mnt/sysimage")
}

func TestListQueryError(t *testing.T) {
	runner := &fakeRunner{queryErr: errors.New("command not found")}
	client := newTestClient(runner)

	_, err := client.List(context.Background(), ListOptions{})
	require.Error(t, err)

	var qerr *models.RPMQError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, models.ErrQuery, qerr.Type)
}

func TestListBadInstallTime(t *testing.T) {
	runner := &fakeRunner{
		queryOutput: "foo_|-0_|-1.0_|-1_|-x86_64_|-(none)_|-not-a-number\n",
	}
	client := newTestClient(runner)

	_, err := client.List(context.Background(), ListOptions{})
	require.Error(t, err)

	var qerr *models.RPMQError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, models.ErrParse, qerr.Type)
}

func TestVersions(t *testing.T) {
	runner := &fakeRunner{queryOutput: sampleQueryOutput}
	client := newTestClient(runner)

	versions, err := client.Versions(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "4.18.0-80.el8,5.14.0-70.el9", versions["kernel"])
	assert.Equal(t, "5.1.8-6.el9", versions["bash"])
	assert.Equal(t, "1:2021e-1.el9", versions["tzdata"])
	assert.NotContains(t, versions, "gpg-pubkey")
}
