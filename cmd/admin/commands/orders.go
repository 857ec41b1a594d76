package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func ordersCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			orders, err := wire.Admin.Orders(cmd.Context(), status)
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
	cmd.Flags().StringVar(&status, "status", "", "filter by order status")
	return cmd
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <order-id>",
		Short: "Show one order in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			o, err := wire.Admin.Order(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Order %d (%s)\n", o.ID, o.Status)
			fmt.Printf("Store:   %s\n", o.StoreName)
			fmt.Printf("Address: %s\n", o.DeliveryAddress)
			fmt.Printf("Placed:  %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
			for _, it := range o.Items {
				fmt.Printf("  %dx %-24s %8.2f\n", it.Quantity, it.Name, it.Price)
			}
			fmt.Printf("Total:   %.2f\n", o.TotalPrice)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Update an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status := string(domain.OrderStatusFromString(args[1]))
			if !strings.EqualFold(strings.TrimSpace(args[1]), status) {
				return fmt.Errorf("unknown status %q", args[1])
			}
			if err := wire.Admin.UpdateOrderStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			fmt.Printf("Order %d -> %s\n", id, status)
			return nil
		},
	}
}

func assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <order-id> <partner-id>",
		Short: "Assign an order to a delivery partner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			partnerID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid partner id %q", args[1])
			}
			if err := wire.Admin.AssignPartner(cmd.Context(), orderID, partnerID); err != nil {
				return err
			}
			fmt.Printf("Order %d assigned to partner %d\n", orderID, partnerID)
			return nil
		},
	}
}
