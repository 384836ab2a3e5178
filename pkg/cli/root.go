package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asilingas/fambudg/pkg/session"
)

const defaultHost = "http://localhost:8080"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions carries the resolved global flags into subcommands.
type rootOptions struct {
	host    string
	profile string
}

// sessionStore builds the session store for the active profile.
func (o *rootOptions) sessionStore() *session.Store {
	return session.NewStore(
		NewProfileTokenStore(o.profileName()),
		session.NewClient(o.host),
	)
}

func (o *rootOptions) profileName() string {
	return loadOrEmptyConfig().ActiveProfileName(o.profile)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "fambudg",
		Short:         "Family budgeting CLI",
		Long:          "Command-line client for the family budgeting server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Precedence: flag > env > profile > default.
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("FAMBUDG_HOST"); v != "" {
					opts.host = v
				} else if p := loadOrEmptyConfig().ActiveProfile(opts.profile); p.Host != "" {
					opts.host = p.Host
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.host, "host", defaultHost, "Server base URL")
	rootCmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "Configuration profile to use")

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newLogoutCmd(opts))
	rootCmd.AddCommand(newWhoamiCmd(opts))
	rootCmd.AddCommand(newNavCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCommandsCmd())

	return rootCmd
}
