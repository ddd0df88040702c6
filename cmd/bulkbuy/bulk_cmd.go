package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/bulkorder"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

func newBulkCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Bulk orders (minimum 50 kg)",
	}
	cmd.AddCommand(
		newBulkListCmd(env),
		newBulkBrowseCmd(env),
		newBulkCreateCmd(env),
		newBulkUpdateCmd(env),
		newBulkDeleteCmd(env),
	)
	return cmd
}

func newBulkListCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bulk orders (suppliers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			list, err := env.bulk.List(cmd.Context(), me.ID)
			if err != nil {
				return userFacing(err, "Failed to load bulk orders.")
			}
			printBulkOrders(env, list)
			return nil
		},
	}
	return withView(cmd, access.SupplierDashboard)
}

func newBulkBrowseCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse bulk orders from every supplier (vendors)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := env.bulk.Browse(cmd.Context())
			if err != nil {
				return userFacing(err, "Failed to load bulk orders.")
			}
			printBulkOrders(env, list)
			return nil
		},
	}
	return withView(cmd, access.VendorDashboard)
}

func bulkFlags(cmd *cobra.Command, fields *bulkorder.Fields) {
	f := cmd.Flags()
	f.StringVar(&fields.ProductName, "product", "", "product name")
	f.StringVar(&fields.Quantity, "quantity", "", "quantity in kg (minimum 50)")
	f.StringVar(&fields.Price, "price", "", "price per kg")
	f.StringVar(&fields.SupplierName, "supplier-name", "", "supplier name shown to vendors (defaults to your business name)")
	f.StringVar(&fields.Pincode, "pincode", "", "pickup pincode (defaults to your pincode)")
}

func newBulkCreateCmd(env *environment) *cobra.Command {
	var fields bulkorder.Fields
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a bulk order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			b, err := env.bulk.Create(cmd.Context(), fields, me)
			if err != nil {
				return userFacing(err, "Failed to create bulk order.")
			}
			fmt.Fprintf(env.out, "Bulk order created: %s, %s kg (%s)\n", b.ProductName, env.printer.Sprintf("%d", b.Quantity), b.ID)
			return nil
		},
	}
	bulkFlags(cmd, &fields)
	return withView(cmd, access.SupplierDashboard)
}

func newBulkUpdateCmd(env *environment) *cobra.Command {
	var fields bulkorder.Fields
	cmd := &cobra.Command{
		Use:   "update <bulk-order-id>",
		Short: "Edit a bulk order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := env.bulk.Update(cmd.Context(), args[0], fields)
			if err != nil {
				return userFacing(err, "Failed to update bulk order.")
			}
			fmt.Fprintf(env.out, "Bulk order updated: %s, %s kg\n", b.ProductName, env.printer.Sprintf("%d", b.Quantity))
			return nil
		},
	}
	bulkFlags(cmd, &fields)
	return withView(cmd, access.SupplierDashboard)
}

func newBulkDeleteCmd(env *environment) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <bulk-order-id>",
		Short: "Delete a bulk order (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := env.bulk.Delete(cmd.Context(), args[0], promptConfirmer{env: env, assumeYes: yes})
			if errors.Is(err, domain.ErrCancelled) {
				fmt.Fprintln(env.out, "Cancelled.")
				return nil
			}
			if err != nil {
				return userFacing(err, "Failed to delete bulk order.")
			}
			fmt.Fprintln(env.out, "Bulk order deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return withView(cmd, access.SupplierDashboard)
}

func printBulkOrders(env *environment, list []entity.BulkOrder) {
	if len(list) == 0 {
		fmt.Fprintln(env.out, "No bulk orders yet.")
		return
	}
	tw := newTable(env.out)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQUANTITY (KG)\tPRICE/KG\tSUPPLIER\tPINCODE\tCREATED")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.ProductName, env.printer.Sprintf("%d", b.Quantity), env.rupees(b.Price),
			b.SupplierName, b.Pincode, shortDate(b.CreatedAt))
	}
	_ = tw.Flush()
}
