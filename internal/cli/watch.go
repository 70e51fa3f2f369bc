// internal/cli/watch.go
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zamgas/zamgas-client/internal/domain"
)

func newWatchCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow realtime order and payment events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !r.app.session.IsAuthenticated() {
				return domain.ErrNotAuthenticated
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Listening on %s (Ctrl-C to stop)\n", r.app.cfg.WSURL)
			err := r.app.subscriber.Listen(cmd.Context(), func(ctx context.Context, ev domain.Event) {
				r.app.orders.HandleEvent(ctx, ev)
				if ev.OrderID != "" {
					fmt.Fprintf(out, "%s\torder %s\n", ev.Type, ev.OrderID)
					return
				}
				fmt.Fprintln(out, ev.Type)
			})
			if errors.Is(err, domain.ErrUnauthorized) && r.app.auth.HandleUnauthorized(cmd.Context(), "/ws") {
				r.app.sessionExpired = true
			}
			return err
		},
	}
}
