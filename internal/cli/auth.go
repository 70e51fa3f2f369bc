// internal/cli/auth.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zamgas/zamgas-client/internal/domain"
)

type credentials struct {
	email    string
	password string
}

func (c *credentials) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&c.password, "password", "p", "", "account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
}

// resolve reads the password from in when the flag was not given.
func (c *credentials) resolve(in io.Reader, out io.Writer) error {
	if c.password != "" {
		return nil
	}
	fmt.Fprint(out, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}
	c.password = strings.TrimRight(line, "\r\n")
	return nil
}

type loginFunc func(ctx context.Context, email, password string) (*domain.User, error)

func runLogin(cmd *cobra.Command, c *credentials, login loginFunc) error {
	if err := c.resolve(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
		return err
	}
	user, err := login(cmd.Context(), c.email, c.password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, describeRole(user))
	return nil
}

func newSignInCmd(r *root) *cobra.Command {
	var c credentials
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with a customer, provider or courier account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, &c, r.app.auth.SignIn)
		},
	}
	c.bind(cmd)
	return cmd
}

func newAdminCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator commands",
	}
	var c credentials
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the admin console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, &c, r.app.auth.AdminLogin)
		},
	}
	c.bind(login)
	cmd.AddCommand(login)
	return cmd
}

func newSignOutCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoAmICmd(r *root) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := r.app.session.User()
			if user == nil {
				return domain.ErrNotAuthenticated
			}
			if refresh && user.IsAdmin() {
				fresh, err := r.app.auth.RefreshAdminProfile(cmd.Context())
				if err != nil {
					return err
				}
				user = fresh
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "role:  %s\n", describeRole(user))
			if user.PhoneNumber != "" {
				fmt.Fprintf(out, "phone: %s\n", user.PhoneNumber)
			}
			if user.IsAdmin() && len(user.AdminPermissions) > 0 {
				fmt.Fprintf(out, "permissions: %s\n", strings.Join(user.AdminPermissions, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reload admin role and permissions from the platform")
	return cmd
}

func describeRole(u *domain.User) string {
	if u.IsAdmin() && u.AdminRole != "" {
		return fmt.Sprintf("%s, %s", u.UserType, u.AdminRole)
	}
	return string(u.UserType)
}
