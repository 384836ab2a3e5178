package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCommandsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List all available CLI commands with their flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lower := strings.ToLower(filter)
			for _, line := range walkCommands(cmd.Root(), "") {
				if lower != "" && !strings.Contains(strings.ToLower(line), lower) {
					continue
				}
				fmt.Fprintln(os.Stdout, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Substring search across command names and descriptions")
	return cmd
}

// walkCommands recursively collects leaf commands with their flag lists.
func walkCommands(cmd *cobra.Command, parentPath string) []string {
	var lines []string
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		path := child.Name()
		if parentPath != "" {
			path = parentPath + " " + child.Name()
		}
		if child.HasSubCommands() {
			lines = append(lines, walkCommands(child, path)...)
			continue
		}
		lines = append(lines, fmt.Sprintf("%-28s %s%s", path, child.Short, flagSummary(child.Flags())))
	}
	return lines
}

func flagSummary(fs *pflag.FlagSet) string {
	var names []string
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, "--"+f.Name)
	})
	if len(names) == 0 {
		return ""
	}
	return " [" + strings.Join(names, " ") + "]"
}
