package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func partnersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partners",
		Short: "List delivery partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			partners, err := wire.Admin.Partners(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range partners {
				avail := "offline"
				if p.IsAvailable {
					avail = "available"
				}
				fmt.Printf("%4d  %-20s %-14s %.1f  %s\n", p.ID, p.Name, p.Phone, p.Rating, avail)
			}
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			s, err := wire.Admin.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Total orders:       %d\n", s.TotalOrders)
			fmt.Printf("Pending orders:     %d\n", s.PendingOrders)
			fmt.Printf("Active deliveries:  %d\n", s.ActiveDeliveries)
			fmt.Printf("Completed today:    %d\n", s.CompletedToday)
			fmt.Printf("Revenue today:      %.2f\n", s.RevenueToday)
			fmt.Printf("Available partners: %d\n", s.AvailablePartners)
			return nil
		},
	}
}
