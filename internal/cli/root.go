// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// root holds the state shared by every subcommand of one invocation.
type root struct {
	cfgFile string
	v       *viper.Viper
	app     *app
}

func newRootCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zamgas",
		Short: "Command-line client for the ZAMGAS LPG delivery platform",
		Long: `zamgas signs you in to the ZAMGAS platform, lists and acts on your orders
according to your role, pays for orders by mobile money and follows
realtime order events.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), r.cfgFile, r.v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			r.app = a
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&r.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("api-url", "", "platform base URL")
	pf.String("environment", "", "production or sandbox")
	pf.String("storage", "", "session storage: file, memory, redis or postgres")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text or json)")
	for key, flag := range map[string]string{
		"api_url":     "api-url",
		"environment": "environment",
		"storage":     "storage",
		"log_level":   "log-level",
		"log_format":  "log-format",
	} {
		if err := r.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	cmd.AddCommand(
		newSignInCmd(r),
		newAdminCmd(r),
		newSignOutCmd(r),
		newWhoAmICmd(r),
		newOrdersCmd(r),
		newPaymentsCmd(r),
		newWatchCmd(r),
	)
	return cmd
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := &root{v: viper.New()}
	cmd := newRootCmd(r)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	expired := false
	if r.app != nil {
		expired = r.app.sessionExpired
		r.app.Close()
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", describe(err, expired))
		return 1
	}
	return 0
}

// Execute runs the CLI against the process arguments and exits on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
