package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in as a delivery partner",
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
	return wire.Store.SaveUserType(domain.RoleDeliveryPartner)
}

func pushTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push-token <device-token>",
		Short: "Forward a new device push token to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Bridge.HandleNewToken(cmd.Context(), args[0])
			return nil
		},
	}
}
