package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/session"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached identity and token claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			if u, ok := wire.Store.User(); ok {
				fmt.Printf("%s <%s> (%s)\n", u.Name, u.Email, u.Role)
			}
			tok, _ := wire.Store.Token()
			claims, err := session.Parse(tok)
			if err != nil {
				// Opaque tokens are fine; there is just nothing to show.
				return nil
			}
			if !claims.ExpiresAt.IsZero() {
				fmt.Printf("token expires %s\n", claims.ExpiresAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
