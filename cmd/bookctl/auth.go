package main

import (
	"fmt"

	"github.com/emzola/bookmanager/service"
	"github.com/spf13/cobra"
)

func newLoginCommand(e *env) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = e.prompt("Email: "); err != nil {
					return err
				}
			}
			password, err := e.readPassword("Contraseña: ")
			if err != nil {
				return err
			}
			if err := e.svc.Login(cmd.Context(), e.sess, email, password); err != nil {
				return err
			}
			user := e.sess.User()
			fmt.Fprintf(e.out, "Sesión iniciada como %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Sesión cerrada")
			return nil
		},
	}
}

func newRegisterCommand(e *env) *cobra.Command {
	var form service.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.Name == "" {
				if form.Name, err = e.prompt("Nombre: "); err != nil {
					return err
				}
			}
			if form.Email == "" {
				if form.Email, err = e.prompt("Email: "); err != nil {
					return err
				}
			}
			if form.Password, err = e.readPassword("Contraseña: "); err != nil {
				return err
			}
			if form.Confirmation, err = e.readPassword("Confirmar contraseña: "); err != nil {
				return err
			}
			if err := e.svc.Register(cmd.Context(), e.sess, form); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "Registro exitoso. Revisa tu correo para verificar tu cuenta.")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	return cmd
}

func newWhoamiCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.requireAuthenticatedUser(); err != nil {
				return err
			}
			user := e.sess.User()
			fmt.Fprintf(e.out, "%s <%s>\nRol: %s\nVerificado: %s\n", user.Name, user.Email, user.Role, yesNo(user.IsVerified))
			return nil
		},
	}
}

func newVerifyCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TOKEN",
		Short: "Confirm an email verification token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := e.svc.VerifyEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, msg)
			return nil
		},
	}
}
