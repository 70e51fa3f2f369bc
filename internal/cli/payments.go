// internal/cli/payments.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zamgas/zamgas-client/internal/domain"
)

func newPaymentsCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Pay for orders by mobile money",
	}
	cmd.AddCommand(newPayCmd(r), newPaymentStatusCmd(r))
	return cmd
}

func newPayCmd(r *root) *cobra.Command {
	var phone string
	cmd := &cobra.Command{
		Use:   "pay ORDER_ID",
		Short: "Start a mobile money payment and wait for confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := r.app.orders.GetOrder(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Requesting K%.2f from %s, approve the prompt on your phone...\n", o.GrandTotal, phone)

			outcome, err := r.app.payments.PayForOrder(ctx, *o, phone)
			if err != nil {
				return err
			}
			switch outcome.State {
			case domain.PaymentSuccess:
				fmt.Fprintf(out, "Payment confirmed (deposit %s)\n", outcome.DepositID)
				return nil
			default:
				return fmt.Errorf("payment %s: %s", outcome.DepositID, outcome.Message)
			}
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "mobile money number, e.g. 260971234567")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func newPaymentStatusCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "status DEPOSIT_ID",
		Short: "Show the gateway status of a deposit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := r.app.payments.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s", st.DepositID, st.Status)
			if st.Message != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\t%s", st.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
