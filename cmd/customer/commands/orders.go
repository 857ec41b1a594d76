package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func checkoutCmd() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			cart := wire.Store.Cart()
			if len(cart.Items) == 0 {
				return fmt.Errorf("cart is empty")
			}

			items := make([]domain.OrderItem, len(cart.Items))
			for i, it := range cart.Items {
				items[i] = domain.OrderItem{ProductID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity}
			}
			order, err := wire.Orders.PlaceOrder(cmd.Context(), items, cart.Items[0].StoreID, address)
			if err != nil {
				return err
			}
			if err := wire.Store.SaveCart(domain.Cart{}); err != nil {
				return err
			}
			fmt.Printf("Order %d placed, total %.2f\n", order.ID, order.TotalPrice)
			return nil
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "delivery address")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func ordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			orders, err := wire.Orders.Orders(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range orders {
				fmt.Printf("%4d  %-20s %-16s %8.2f  %s\n",
					o.ID, o.StoreName, o.Status, o.TotalPrice, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
