package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration profiles",
	}

	cmd.AddCommand(newConfigGetHostCmd(opts))
	cmd.AddCommand(newConfigSetHostCmd(opts))
	cmd.AddCommand(newConfigUseProfileCmd())

	return cmd
}

func newConfigGetHostCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get-host",
		Short: "Print the server host of the active profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := loadOrEmptyConfig().ActiveProfile(opts.profile)
			host := p.Host
			if host == "" {
				host = defaultHost
			}
			fmt.Fprintln(os.Stdout, host)
			return nil
		},
	}
}

func newConfigSetHostCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-host <url>",
		Short: "Set the server host on the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadOrEmptyConfig()
			name := cfg.ActiveProfileName(opts.profile)
			p := cfg.Profiles[name]
			p.Host = args[0]
			cfg.Profiles[name] = p
			if cfg.CurrentProfile == "" {
				cfg.CurrentProfile = name
			}
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Host for profile %q set to %s\n", name, args[0])
			return nil
		},
	}
}

func newConfigUseProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Switch the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := loadOrEmptyConfig()
			cfg.CurrentProfile = args[0]
			if _, ok := cfg.Profiles[args[0]]; !ok {
				cfg.Profiles[args[0]] = Profile{}
			}
			if err := SaveUserConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Switched to profile %q\n", args[0])
			return nil
		},
	}
}
