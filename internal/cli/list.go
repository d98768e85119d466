package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ralt/rpmq/internal/models"
	"github.com/ralt/rpmq/internal/rpmdb"
	"github.com/spf13/cobra"
)

type listOptions struct {
	root    string
	attrs   []string
	jsonOut bool
}

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Long: `Queries the RPM database for every installed package and prints a
name to version mapping. With --attr, each installation's attributes
are emitted as JSON instead of the plain version string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateListOptions(&opts); err != nil {
				return err
			}
			return runList(cmd.Context(), &opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Operate on a different root directory")
	cmd.Flags().StringSliceVar(&opts.attrs, "attr", nil,
		"Attributes to include: 'all' or a subset of epoch,version,release,arch,install_date,install_date_time_t")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit JSON output")

	return cmd
}

func validateListOptions(opts *listOptions) error {
	for _, attr := range opts.attrs {
		if attr == "all" {
			if len(opts.attrs) != 1 {
				return &models.RPMQError{
					Type: models.ErrInvalidConfig,
					Err:  fmt.Errorf("'all' cannot be combined with other attributes"),
				}
			}
			continue
		}
		if !models.IsValidAttribute(attr) {
			return &models.RPMQError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("unknown attribute %q, valid attributes: %v", attr, models.ValidAttributes),
			}
		}
	}
	return nil
}

func runList(ctx context.Context, opts *listOptions, w io.Writer) error {
	client := rpmdb.NewClient(nil)

	inv, err := client.List(ctx, rpmdb.ListOptions{Root: opts.root})
	if err != nil {
		return err
	}

	// Plain name/version listing unless attributes were requested.
	if len(opts.attrs) == 0 && !opts.jsonOut {
		versions := inv.Versions()
		for _, name := range inv.Names() {
			fmt.Fprintf(w, "%s %s\n", name, versions[name])
		}
		return nil
	}

	var payload interface{}
	if len(opts.attrs) == 0 {
		payload = inv.Versions()
	} else {
		selected := make(map[string][]map[string]interface{}, len(inv))
		for name, attrs := range inv {
			entries := make([]map[string]interface{}, 0, len(attrs))
			for _, a := range attrs {
				entries = append(entries, a.Select(opts.attrs))
			}
			selected[name] = entries
		}
		payload = selected
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
