package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token in the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			password, err := promptPassword()
			if err != nil {
				return err
			}

			store := opts.sessionStore()
			if err := store.Login(cmd.Context(), email, password); err != nil {
				return err
			}

			p := store.Principal()
			fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", p.Name, p.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	return cmd
}

// promptPassword reads the password without echo when stdin is a
// terminal, or as a plain line otherwise (pipes, scripts).
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := opts.sessionStore()
			store.Logout()
			fmt.Fprintln(os.Stdout, "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := opts.sessionStore()
			store.Initialize(cmd.Context())

			p := store.Principal()
			if p == nil {
				fmt.Fprintln(os.Stdout, "Not logged in.")
				return nil
			}
			fmt.Fprintf(os.Stdout, "%s <%s> role=%s\n", p.Name, p.Email, p.Role)
			return nil
		},
	}
}
