package commands

import (
	"fmt"

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
		Use:          "swiftdrop-courier",
		Short:        "SwiftDrop delivery partner app",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load("courier")
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
		loginCmd(), logoutCmd(),
		assignmentsCmd(), statusCmd(), locationCmd(),
		dashboardCmd(), earningsCmd(), pushTokenCmd(),
	)
	return root.Execute()
}

func requireLogin() error {
	if !wire.Store.LoggedIn() {
		return fmt.Errorf("not logged in; run `swiftdrop-courier login` first")
	}
	return nil
}
