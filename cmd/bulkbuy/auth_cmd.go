package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/auth"
	"github.com/jhoicas/bulkbuy/internal/application/credentials"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/jwt"
)

func newLoginCmd(env *environment) *cobra.Command {
	var form credentials.LoginForm
	var role string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a vendor (phone) or supplier (email or phone)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.Role = entity.Role(role)
			res, err := env.auth.Login(cmd.Context(), form)
			if err != nil {
				return userFacing(err, auth.MsgLoginFailed)
			}
			fmt.Fprintf(env.out, "Welcome back, %s!\n", res.User.DisplayName())
			printNext(env, res.Dashboard)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(entity.RoleVendor), "vendor | supplier")
	cmd.Flags().StringVarP(&form.Identifier, "id", "i", "", "phone number (vendor) or email/phone (supplier)")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "password")
	return withView(cmd, access.Login)
}

func newSignupCmd(env *environment) *cobra.Command {
	var (
		form credentials.SignupForm
		role string
	)
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a vendor or supplier account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// los campos del otro rol se descartan, igual que al cambiar de pestaña
			filled := form
			form.SwitchRole(entity.Role(role))
			form.Phone, form.Password = filled.Phone, filled.Password
			switch form.Role {
			case entity.RoleVendor:
				form.Name = filled.Name
			case entity.RoleSupplier:
				form.BusinessName, form.Email, form.Pincode = filled.BusinessName, filled.Email, filled.Pincode
			}
			res, err := env.auth.Signup(cmd.Context(), form)
			if err != nil {
				return userFacing(err, auth.MsgSignupFailed)
			}
			fmt.Fprintf(env.out, "Account created. Welcome, %s!\n", res.User.DisplayName())
			printNext(env, res.Dashboard)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&role, "role", string(entity.RoleVendor), "vendor | supplier")
	f.StringVar(&form.Name, "name", "", "full name (vendor)")
	f.StringVar(&form.BusinessName, "business-name", "", "business name (supplier)")
	f.StringVar(&form.Email, "email", "", "email (supplier)")
	f.StringVar(&form.Pincode, "pincode", "", "pincode (supplier)")
	f.StringVar(&form.Phone, "phone", "", "10-digit phone number")
	f.StringVarP(&form.Password, "password", "p", "", "password: 6+ letters/digits with upper, lower and a digit")
	return withView(cmd, access.Signup)
}

func newLogoutCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(env.out, "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			snap := env.session.Snapshot()
			if !snap.Authenticated() {
				fmt.Fprintln(env.out, "Not logged in.")
				return nil
			}
			u := snap.User
			fmt.Fprintf(env.out, "%s (%s)\n", u.DisplayName(), u.Role)
			fmt.Fprintf(env.out, "ID:      %s\n", u.ID)
			if u.Phone != "" {
				fmt.Fprintf(env.out, "Phone:   %s\n", u.Phone)
			}
			if u.Email != "" {
				fmt.Fprintf(env.out, "Email:   %s\n", u.Email)
			}
			if u.Pincode != "" {
				fmt.Fprintf(env.out, "Pincode: %s\n", u.Pincode)
			}
			if exp, ok := jwt.ExpiresAt(snap.Token); ok {
				fmt.Fprintf(env.out, "Token expires %s\n", exp.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}

func printNext(env *environment, dash access.ViewName) {
	switch dash {
	case access.ViewVendorDashboard:
		fmt.Fprintln(env.out, "Next: `bulkbuy dashboard`, `bulkbuy suppliers search <pincode>`")
	case access.ViewSupplierDashboard:
		fmt.Fprintln(env.out, "Next: `bulkbuy dashboard`, `bulkbuy products add`, `bulkbuy bulk create`")
	}
}
