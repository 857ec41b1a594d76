package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in with an admin account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := wire.Admin.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := wire.Store.SaveTokens(sess.Tokens); err != nil {
				return err
			}
			user := domain.User{
				ID:    sess.User.ID,
				Name:  sess.User.Name,
				Email: sess.User.Email,
				Role:  domain.RoleAdmin,
			}
			if err := wire.Store.SaveUser(user); err != nil {
				return err
			}
			if err := wire.Store.SaveUserType(domain.RoleAdmin); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", sess.User.Name)
			return nil
		},
	}
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
