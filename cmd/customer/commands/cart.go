package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}
	cmd.AddCommand(cartAddCmd(), cartShowCmd(), cartSetCmd(), cartRemoveCmd(), cartClearCmd())
	return cmd
}

func cartAddCmd() *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add <store-id> <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			storeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid store id %q", args[0])
			}
			productID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[1])
			}

			// Look the product up so the cart snapshots name and price.
			products, err := wire.Catalog.Products(cmd.Context(), storeID)
			if err != nil {
				return err
			}
			var found *domain.Product
			for i := range products {
				if products[i].ID == productID {
					found = &products[i]
					break
				}
			}
			if found == nil {
				return fmt.Errorf("product %d not found in store %d", productID, storeID)
			}

			cart := wire.Store.Cart().Add(domain.CartItem{
				ProductID:   found.ID,
				StoreID:     found.StoreID,
				Name:        found.Name,
				Price:       found.Price,
				Quantity:    qty,
				MaxQuantity: found.MaxQuantity,
			})
			if err := wire.Store.SaveCart(cart); err != nil {
				return err
			}
			fmt.Printf("Added %s; cart has %d items\n", found.Name, cart.TotalItems())
			return nil
		},
	}
	cmd.Flags().IntVarP(&qty, "quantity", "q", 1, "quantity to add")
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := wire.Store.Cart()
			if len(cart.Items) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}
			for _, it := range cart.Items {
				fmt.Printf("%4d  %-25s x%-3d %8.2f\n", it.ProductID, it.Name, it.Quantity, it.Price*float64(it.Quantity))
			}
			fmt.Printf("total: %.2f (%d items)\n", cart.TotalPrice(), cart.TotalItems())
			return nil
		},
	}
}

func cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a product's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			return wire.Store.SaveCart(wire.Store.Cart().SetQuantity(productID, qty))
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			return wire.Store.SaveCart(wire.Store.Cart().Remove(productID))
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Store.SaveCart(domain.Cart{})
		},
	}
}
