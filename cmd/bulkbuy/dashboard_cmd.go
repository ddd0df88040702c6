package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// newDashboardCmd muestra el panel del rol de la sesión; el gate se aplica sobre esa vista.
func newDashboardCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.session.WaitReady(cmd.Context()); err != nil {
				return err
			}
			snap := env.session.Snapshot()
			if !snap.Authenticated() {
				return &cliError{msg: "you are not logged in; run `bulkbuy login` first", err: domain.ErrNotAuthenticated}
			}
			target, ok := access.DashboardFor(snap.User.Role)
			if !ok {
				return &cliError{msg: fmt.Sprintf("unknown role %q", snap.User.Role), err: domain.ErrForbidden}
			}
			if target == access.ViewVendorDashboard {
				return vendorDashboard(cmd, env)
			}
			return supplierDashboard(cmd, env, *snap.User)
		},
	}
}

func vendorDashboard(cmd *cobra.Command, env *environment) error {
	d, err := env.discovery.Dashboard(cmd.Context())
	if err != nil {
		return userFacing(err, "Failed to load dashboard.")
	}
	fmt.Fprintf(env.out, "Welcome, %s!\n", d.VendorName)
	if d.Phone != "" {
		fmt.Fprintf(env.out, "Phone: %s\n", d.Phone)
	}
	fmt.Fprintf(env.out, "Orders placed: %s\n\n", env.printer.Sprintf("%d", d.TotalOrders))

	bulk, err := env.bulk.Browse(cmd.Context())
	if err != nil {
		env.log.Warn().Err(err).Msg("pedidos al por mayor no disponibles")
		fmt.Fprintln(env.out, "Bulk orders are unavailable right now.")
		return nil
	}
	fmt.Fprintln(env.out, "Bulk orders available:")
	printBulkOrders(env, bulk)
	return nil
}

func supplierDashboard(cmd *cobra.Command, env *environment, me entity.User) error {
	fmt.Fprintf(env.out, "Welcome, %s!\n", me.DisplayName())
	if me.Pincode != "" {
		fmt.Fprintf(env.out, "Pincode: %s\n", me.Pincode)
	}
	fmt.Fprintln(env.out)

	products, err := env.catalog.List(cmd.Context(), me.ID)
	if err != nil {
		return userFacing(err, "Failed to load products.")
	}
	fmt.Fprintln(env.out, "Your products:")
	printProducts(env, products)
	fmt.Fprintln(env.out)

	bulk, err := env.bulk.List(cmd.Context(), me.ID)
	if err != nil {
		return userFacing(err, "Failed to load bulk orders.")
	}
	fmt.Fprintln(env.out, "Your bulk orders:")
	printBulkOrders(env, bulk)
	return nil
}
