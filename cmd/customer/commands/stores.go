package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List marketplace stores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			stores, err := wire.Catalog.Stores(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range stores {
				open := "closed"
				if s.IsOpen {
					open = "open"
				}
				fmt.Printf("%4d  %-25s %-12s %.1f  %s\n", s.ID, s.Name, s.Category, s.Rating, open)
			}
			return nil
		},
	}
}

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products <store-id>",
		Short: "List a store's products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			storeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid store id %q", args[0])
			}
			products, err := wire.Catalog.Products(cmd.Context(), storeID)
			if err != nil {
				return err
			}
			for _, p := range products {
				stock := ""
				if !p.InStock {
					stock = "  (out of stock)"
				}
				fmt.Printf("%4d  %-25s %8.2f%s\n", p.ID, p.Name, p.Price, stock)
			}
			return nil
		},
	}
}
