package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftdrop/internal/app"
)

var (
	baseURL string
	verbose bool
	wire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "swiftdrop",
		Short:         "SwiftDrop customer app",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load("customer")
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if verbose {
				cfg.Verbose = true
			}
			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides SWIFTDROP_BASE_URL)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request/response bodies")

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(), whoamiCmd(),
		storesCmd(), productsCmd(),
		cartCmd(), checkoutCmd(),
		ordersCmd(), trackCmd(), pushCmd(),
	)
	return root.Execute()
}

// requireLogin is the shared guard for authenticated commands.
func requireLogin() error {
	if !wire.Store.LoggedIn() {
		return fmt.Errorf("not logged in; run `%s login` first", os.Args[0])
	}
	return nil
}
