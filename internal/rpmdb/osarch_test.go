package rpmdb

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSArchFromRPM(t *testing.T) {
	runner := &fakeRunner{evalOutput: " X86_64 \n"}
	client := NewClient(runner)

	arch := client.OSArch(context.Background())
	assert.Equal(t, "x86_64", arch)
}

func TestOSArchCached(t *testing.T) {
	runner := &fakeRunner{evalOutput: "x86_64\n"}
	client := NewClient(runner)

	client.OSArch(context.Background())
	client.OSArch(context.Background())
	require.Len(t, runner.calls, 1)
}

func TestOSArchFallback(t *testing.T) {
	runner := &fakeRunner{evalErr: errors.New("executable file not found")}
	client := NewClient(runner)

	want := goArchToRPMArch[runtime.GOARCH]
	if want == "" {
		want = "unknown"
	}
	assert.Equal(t, want, client.OSArch(context.Background()))
}

func TestOSArchUnknown(t *testing.T) {
	// rpm succeeding with empty output still normalizes to the
	// sentinel, never to an empty string.
	runner := &fakeRunner{evalOutput: "  \n"}
	client := NewClient(runner)

	assert.Equal(t, "unknown", client.OSArch(context.Background()))
}
