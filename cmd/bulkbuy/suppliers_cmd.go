package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/discovery"
)

func newSuppliersCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Find suppliers and browse their products",
	}
	cmd.AddCommand(newSuppliersSearchCmd(env), newSuppliersProductsCmd(env))
	return cmd
}

func newSuppliersSearchCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <pincode>",
		Short: "Search suppliers by pincode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := env.discovery.SearchByPincode(cmd.Context(), args[0])
			if err != nil {
				return &cliError{msg: discovery.SearchFailureMessage(err), err: err}
			}
			if res.NotFound {
				fmt.Fprintln(env.out, res.Message)
				return nil
			}
			tw := newTable(env.out)
			fmt.Fprintln(tw, "ID\tSUPPLIER\tPHONE\tEMAIL")
			for _, s := range res.Suppliers {
				name := s.BusinessName
				if name == "" {
					name = s.Name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, name, s.Phone, s.Email)
			}
			_ = tw.Flush()
			fmt.Fprintln(env.out, "\nNext: `bulkbuy suppliers products <supplier-id>`")
			return nil
		},
	}
	return withView(cmd, access.VendorDashboard)
}

func newSuppliersProductsCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products <supplier-id>",
		Short: "Show the products a supplier offers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := env.discovery.SupplierProducts(cmd.Context(), args[0])
			if err != nil {
				return userFacing(err, "Failed to load products.")
			}
			if store.SupplierName != "" {
				fmt.Fprintf(env.out, "Products from %s\n\n", store.SupplierName)
			}
			printProducts(env, store.Products)
			if len(store.Products) > 0 {
				fmt.Fprintf(env.out, "\nNext: `bulkbuy order place --supplier %s --product <id> --quantity <kg>`\n", args[0])
			}
			return nil
		},
	}
	return withView(cmd, access.SupplierProducts)
}
