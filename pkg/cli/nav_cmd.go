package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asilingas/fambudg/pkg/access"
)

// compactNavSize is how many entries a compact presentation shows, the
// bottom-tab truncation of the full menu.
const compactNavSize = 5

func newNavCmd(opts *rootOptions) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Print the navigation menu visible to the logged-in role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := opts.sessionStore()
			store.Initialize(cmd.Context())

			p := store.Principal()
			if p == nil {
				return fmt.Errorf("not logged in")
			}

			items := access.NavigationFor(p.Role)
			if compact && len(items) > compactNavSize {
				items = items[:compactNavSize]
			}
			for _, item := range items {
				fmt.Fprintf(os.Stdout, "%-14s %s\n", item.Label, item.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Show only the first five entries")
	return cmd
}
