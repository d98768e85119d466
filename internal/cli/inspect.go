package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ralt/rpmq/internal/models"
	"github.com/ralt/rpmq/internal/rpmfile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Inspect local .rpm files",
		Long: `Reads the header of each given .rpm file and prints its metadata as
JSON. Directories are scanned recursively for RPM packages.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
}

func runInspect(ctx context.Context, args []string, w io.Writer) error {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return &models.RPMQError{
				Type:    models.ErrInspect,
				Package: arg,
				Err:     err,
			}
		}
		if info.IsDir() {
			found, err := rpmfile.Scan(ctx, arg)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}

	if len(paths) == 0 {
		return fmt.Errorf("no rpm packages found")
	}

	packages := make([]*models.FilePackage, 0, len(paths))
	for _, path := range paths {
		logrus.Debugf("Inspecting rpm package: %s", path)
		pkg, err := rpmfile.Inspect(path)
		if err != nil {
			logrus.Warnf("Failed to parse %s: %v", path, err)
			continue
		}
		packages = append(packages, pkg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(packages)
}
