package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func assignmentsCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List your delivery assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			res, err := wire.Delivery.Assignments(cmd.Context(), page)
			if err != nil {
				return err
			}
			for _, a := range res.Results {
				fmt.Printf("%4d  order %-6d %-16s %8.2f  %s\n",
					a.ID, a.OrderID, a.Status, a.Amount, a.Address)
			}
			if res.Next != nil {
				fmt.Printf("(%d total, more on --page %d)\n", res.Count, page+1)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "result page")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <assignment-id> <status>",
		Short: "Update an assignment's status (PICKED_UP, OUT_FOR_DELIVERY, DELIVERED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid assignment id %q", args[0])
			}
			status := string(domain.OrderStatusFromString(args[1]))
			if !strings.EqualFold(strings.TrimSpace(args[1]), status) {
				return fmt.Errorf("unknown status %q", args[1])
			}
			if err := wire.Delivery.UpdateStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			fmt.Printf("Assignment %d -> %s\n", id, status)
			return nil
		},
	}
}

func locationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location <order-id> <lat> <lng>",
		Short: "Report your current position for an order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			lat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q", args[1])
			}
			lng, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q", args[2])
			}
			loc := domain.LatLng{Latitude: lat, Longitude: lng}
			if err := wire.Delivery.ReportLocation(cmd.Context(), orderID, loc); err != nil {
				return err
			}
			fmt.Println("Location reported")
			return nil
		},
	}
}
