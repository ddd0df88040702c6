package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/catalog"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

func newProductsCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage your product catalog (suppliers)",
	}
	cmd.AddCommand(
		newProductsListCmd(env),
		newProductsAddCmd(env),
		newProductsUpdateCmd(env),
		newProductsDeleteCmd(env),
	)
	return cmd
}

func newProductsListCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			list, err := env.catalog.List(cmd.Context(), me.ID)
			if err != nil {
				return userFacing(err, "Failed to load products.")
			}
			printProducts(env, list)
			return nil
		},
	}
	return withView(cmd, access.SupplierDashboard)
}

func newProductsAddCmd(env *environment) *cobra.Command {
	var fields catalog.ProductFields
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			p, err := env.catalog.Create(cmd.Context(), fields, me.ID)
			if err != nil {
				return userFacing(err, "Failed to add product.")
			}
			fmt.Fprintf(env.out, "Product added: %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&fields.Name, "name", "", "product name")
	cmd.Flags().StringVar(&fields.Quantity, "quantity", "", "available quantity in kg")
	cmd.Flags().StringVar(&fields.Price, "price", "", "price per kg")
	return withView(cmd, access.SupplierDashboard)
}

func newProductsUpdateCmd(env *environment) *cobra.Command {
	var fields catalog.ProductFields
	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change quantity and price of a product (the name cannot change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := env.session.CurrentUser()
			if err != nil {
				return err
			}
			// el catálogo local es la referencia para el nombre inmutable
			if _, err := env.catalog.List(cmd.Context(), me.ID); err != nil {
				return userFacing(err, "Failed to load products.")
			}
			p, err := env.catalog.Update(cmd.Context(), args[0], fields)
			if err != nil {
				return userFacing(err, "Failed to update product.")
			}
			fmt.Fprintf(env.out, "Product updated: %s, %s kg at %s/kg\n", p.Name, env.amount(p.Quantity), env.rupees(p.Price))
			return nil
		},
	}
	cmd.Flags().StringVar(&fields.Name, "name", "", "current product name (optional, must not change)")
	cmd.Flags().StringVar(&fields.Quantity, "quantity", "", "available quantity in kg")
	cmd.Flags().StringVar(&fields.Price, "price", "", "price per kg")
	return withView(cmd, access.SupplierDashboard)
}

func newProductsDeleteCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.catalog.Delete(cmd.Context(), args[0]); err != nil {
				return userFacing(err, "Failed to delete product.")
			}
			fmt.Fprintln(env.out, "Product deleted.")
			return nil
		},
	}
	return withView(cmd, access.SupplierDashboard)
}

func printProducts(env *environment, list []entity.Product) {
	if len(list) == 0 {
		fmt.Fprintln(env.out, "No products yet.")
		return
	}
	tw := newTable(env.out)
	fmt.Fprintln(tw, "ID\tNAME\tQUANTITY (KG)\tPRICE/KG")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, env.amount(p.Quantity), env.rupees(p.Price))
	}
	_ = tw.Flush()
}
