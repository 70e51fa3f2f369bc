// internal/cli/orders.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zamgas/zamgas-client/internal/domain"
)

func newOrdersCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "List and act on the orders visible to your role",
	}
	cmd.AddCommand(
		newOrdersListCmd(r),
		newOrdersShowCmd(r),
		newOrderActionCmd(r, "accept", "Accept a pending order (provider)", acceptOrder),
		newOrderActionCmd(r, "reject", "Reject a pending order (provider)", rejectOrder),
		newOrderActionCmd(r, "accept-assignment", "Accept a delivery offer (courier)", acceptAssignment),
		newOrderActionCmd(r, "decline-assignment", "Decline a delivery offer (courier)", declineAssignment),
		newOrderActionCmd(r, "transit", "Mark an order as in transit (admin)", startTransit),
		newDeliverCmd(r),
		newAssignCmd(r),
		newCancelCmd(r),
	)
	return cmd
}

func newOrdersListCmd(r *root) *cobra.Command {
	var refresh, asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list := r.app.orders.ListOrders
			if refresh {
				list = r.app.orders.Refresh
			}
			orders, err := list(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(orders)
			}
			user := r.app.session.User()
			printOrders(out, orders, user.UserType)
			if user.UserType == domain.UserTypeCourier {
				s, err := r.app.orders.CourierSummary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\noffers %d  active %d  completed %d  earnings K%.2f\n",
					s.PendingOffers, s.Active, s.Completed, s.Earnings)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print orders as JSON")
	return cmd
}

func printOrders(w io.Writer, orders []domain.Order, role domain.UserType) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCOURIER\tCYLINDER\tQTY\tTOTAL\tPAYMENT\tACTIONS")
	for _, o := range orders {
		courier := string(o.CourierStatus)
		if courier == "" {
			courier = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\tK%.2f\t%s\t%s\n",
			o.ID, o.Status, courier, o.CylinderType, o.Quantity, o.GrandTotal, o.PaymentStatus,
			joinActions(domain.AllowedActions(o, role)))
	}
	tw.Flush()
}

func joinActions(actions []domain.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, ",")
}

func newOrdersShowCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Show one order in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := r.app.orders.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), o, r.app.session.User().UserType)
			return nil
		},
	}
}

func printOrder(w io.Writer, o *domain.Order, role domain.UserType) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s\t%s\n", k, v)
		}
	}
	row("id", o.ID)
	row("status", string(o.Status))
	row("courier status", string(o.CourierStatus))
	row("customer", o.UserName)
	row("provider", o.ProviderName)
	row("courier", o.CourierName)
	row("cylinder", fmt.Sprintf("%s x %d", o.CylinderType, o.Quantity))
	row("address", o.DeliveryAddress)
	row("subtotal", fmt.Sprintf("K%.2f", o.TotalPrice))
	row("delivery fee", fmt.Sprintf("K%.2f", o.DeliveryFee))
	row("service charge", fmt.Sprintf("K%.2f", o.ServiceCharge))
	row("grand total", fmt.Sprintf("K%.2f", o.GrandTotal))
	row("payment", fmt.Sprintf("%s (%s)", o.PaymentStatus, o.PaymentMethod))
	if o.NeedsReassignment() {
		row("note", "courier declined, needs reassignment")
	}
	row("actions", joinActions(domain.AllowedActions(*o, role)))
	tw.Flush()
}

type orderAction func(ctx context.Context, a *app, o domain.Order) (*domain.Order, error)

func acceptOrder(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
	return a.orders.Accept(ctx, o)
}

func rejectOrder(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
	return a.orders.Reject(ctx, o)
}

func acceptAssignment(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
	return a.orders.AcceptAssignment(ctx, o)
}

func declineAssignment(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
	return a.orders.DeclineAssignment(ctx, o)
}

func startTransit(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
	return a.orders.StartTransit(ctx, o)
}

// withOrder looks the order up in the caller's list, runs fn and prints the result.
func withOrder(r *root, fn orderAction) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		o, err := r.app.orders.GetOrder(ctx, args[0])
		if err != nil {
			return err
		}
		updated, err := fn(ctx, r.app, *o)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s", updated.ID, updated.Status)
		if updated.CourierStatus != domain.CourierStatusNone {
			fmt.Fprintf(cmd.OutOrStdout(), " (courier %s)", updated.CourierStatus)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}
}

func newOrderActionCmd(r *root, use, short string, fn orderAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ORDER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE:  withOrder(r, fn),
	}
}

func newDeliverCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "deliver ORDER_ID",
		Short: "Mark an order as delivered (courier)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var earned float64
			err := withOrder(r, func(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
				updated, e, err := a.orders.MarkDelivered(ctx, o)
				earned = e
				return updated, err
			})(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "You earned K%.2f\n", earned)
			return nil
		},
	}
}

func newAssignCmd(r *root) *cobra.Command {
	var courierID string
	cmd := &cobra.Command{
		Use:   "assign ORDER_ID",
		Short: "Assign a courier to an order (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: withOrder(r, func(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
			return a.orders.AssignCourier(ctx, o, courierID)
		}),
	}
	cmd.Flags().StringVar(&courierID, "courier", "", "courier user id")
	_ = cmd.MarkFlagRequired("courier")
	return cmd
}

func newCancelCmd(r *root) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel an order (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: withOrder(r, func(ctx context.Context, a *app, o domain.Order) (*domain.Order, error) {
			return a.orders.Cancel(ctx, o, reason)
		}),
	}
	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}
