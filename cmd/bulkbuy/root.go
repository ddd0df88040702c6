package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/domain"
)

const (
	Version = "0.1.0"
	appName = "bulkbuy"

	// viewAnnotation vista que representa el comando; el gate la evalúa antes de ejecutarlo.
	viewAnnotation = "bulkbuy/view"
)

func newRootCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Bulk Buy Buddy marketplace client",
		Long: `bulkbuy connects street-food vendors with raw-material suppliers.

Vendors find suppliers by pincode and place orders; suppliers manage their
catalog, publish bulk orders (50 kg minimum) and review the orders they receive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.init(cmd.Context()); err != nil {
				return err
			}
			return gate(cmd, env)
		},
	}
	cmd.SetIn(env.in)
	cmd.SetOut(env.out)

	cmd.AddCommand(
		newLoginCmd(env),
		newSignupCmd(env),
		newLogoutCmd(env),
		newWhoamiCmd(env),
		newDashboardCmd(env),
		newProductsCmd(env),
		newBulkCmd(env),
		newSuppliersCmd(env),
		newOrderCmd(env),
		newOrdersCmd(env),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

// withView asocia el comando a una vista del catálogo de acceso.
func withView(cmd *cobra.Command, v access.View) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[viewAnnotation] = string(v.Name)
	return cmd
}

// gate decide si el comando se ejecuta. Comandos sin vista no se filtran.
func gate(cmd *cobra.Command, env *environment) error {
	name, ok := cmd.Annotations[viewAnnotation]
	if !ok {
		return nil
	}
	view, ok := access.ByName(access.ViewName(name))
	if !ok {
		return fmt.Errorf("vista desconocida %q", name)
	}
	if err := env.session.WaitReady(cmd.Context()); err != nil {
		return err
	}
	snap := env.session.Snapshot()
	d := access.Evaluate(snap, view)
	env.log.Debug().Str("command", cmd.CommandPath()).Str("view", name).Stringer("outcome", d.Outcome).Msg("gate")

	switch d.Outcome {
	case access.Render:
		return nil
	case access.RedirectLogin:
		return &cliError{msg: "you are not logged in; run `bulkbuy login` first", err: domain.ErrNotAuthenticated}
	case access.RedirectHome:
		return &cliError{
			msg: fmt.Sprintf("this command is not available for %s accounts", snap.User.Role),
			err: domain.ErrForbidden,
		}
	case access.RedirectDashboard:
		return &cliError{
			msg: fmt.Sprintf("already logged in as %s; run `bulkbuy dashboard` or `bulkbuy logout`", snap.User.DisplayName()),
			err: domain.ErrForbidden,
		}
	default:
		return &cliError{msg: "session is still loading", err: domain.ErrNotAuthenticated}
	}
}
