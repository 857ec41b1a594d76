package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and store the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.Auth.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveSession(sess); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", sess.User.Name)
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var phone string
	cmd := &cobra.Command{
		Use:   "register <name> <email> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.Auth.Register(cmd.Context(), domain.RegisterRequest{
				Name:     args[0],
				Email:    args[1],
				Password: args[2],
				Phone:    phone,
				Role:     domain.RoleCustomer,
			})
			if err != nil {
				return err
			}
			if err := saveSession(sess); err != nil {
				return err
			}
			fmt.Printf("Welcome, %s\n", sess.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Store.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func saveSession(sess domain.AuthSession) error {
	if err := wire.Store.SaveTokens(sess.Tokens); err != nil {
		return err
	}
	if err := wire.Store.SaveUser(sess.User); err != nil {
		return err
	}
	return wire.Store.SaveUserType(sess.User.Role)
}
