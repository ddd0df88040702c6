package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/ordering"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

func newOrderCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place orders with suppliers (vendors)",
	}
	cmd.AddCommand(newOrderPlaceCmd(env))
	return cmd
}

func newOrderPlaceCmd(env *environment) *cobra.Command {
	var (
		req     ordering.Request
		payment string
	)
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Order a product from a supplier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := parsePayment(payment)
			if err != nil {
				return err
			}
			req.PaymentMode = mode
			order, err := env.orders.Place(cmd.Context(), req)
			if err != nil {
				return &cliError{msg: ordering.FailureMessage(err), err: err}
			}
			fmt.Fprintln(env.out, ordering.MsgPlaced)
			fmt.Fprintf(env.out, "Order %s: %s kg, %s\n", order.ID, env.amount(order.Quantity), order.PaymentMode)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.ProductID, "product", "", "product id")
	f.StringVar(&req.SupplierID, "supplier", "", "supplier id")
	f.StringVar(&req.Quantity, "quantity", "", "quantity in kg")
	f.StringVar(&payment, "payment", "cod", "cod | upi")
	return withView(cmd, access.VendorDashboard)
}

// parsePayment acepta los alias de la CLI o el valor tal cual viaja por la red.
func parsePayment(s string) (entity.PaymentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cod", "cash", strings.ToLower(string(entity.PaymentCashOnDelivery)):
		return entity.PaymentCashOnDelivery, nil
	case "upi", strings.ToLower(string(entity.PaymentUPI)):
		return entity.PaymentUPI, nil
	}
	return "", &cliError{
		msg: ordering.MsgPaymentMode,
		err: domain.FieldError(domain.FieldPaymentMode, ordering.MsgPaymentMode),
	}
}

func newOrdersCmd(env *environment) *cobra.Command {
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Orders received from vendors (suppliers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			list, err := env.orders.SupplierOrders(cmd.Context(), me.ID)
			if err != nil {
				return userFacing(err, "Failed to load orders.")
			}
			printSupplierOrders(env, list)

			if pdfPath == "" {
				return nil
			}
			doc, err := env.statements.RenderOrderStatement(cmd.Context(), me, list)
			if err != nil {
				return fmt.Errorf("generar extracto: %w", err)
			}
			if err := os.WriteFile(pdfPath, doc, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", pdfPath, err)
			}
			fmt.Fprintf(env.out, "Statement written to %s\n", pdfPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write a PDF statement to this file")
	return withView(cmd, access.MyOrders)
}

func printSupplierOrders(env *environment, list []entity.SupplierOrder) {
	if len(list) == 0 {
		fmt.Fprintln(env.out, "No orders yet.")
		return
	}
	tw := newTable(env.out)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQUANTITY (KG)\tPAYMENT\tDATE")
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.ProductName(), env.amount(o.Quantity), o.PaymentMode, shortDate(o.CreatedAt))
	}
	_ = tw.Flush()
}
