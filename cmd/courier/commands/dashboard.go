package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			d, err := wire.Delivery.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Active assignments: %d\n", d.ActiveAssignments)
			fmt.Printf("Completed today:    %d\n", d.CompletedToday)
			fmt.Printf("Earnings today:     %.2f\n", d.EarningsToday)
			fmt.Printf("Avg delivery time:  %.1f min\n", d.AverageDeliveryMins)
			return nil
		},
	}
}

func earningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earnings",
		Short: "Show your earnings breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			e, err := wire.Delivery.Earnings(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Today:      %.2f\n", e.Today)
			fmt.Printf("This week:  %.2f\n", e.ThisWeek)
			fmt.Printf("This month: %.2f\n", e.ThisMonth)
			fmt.Printf("All time:   %.2f\n", e.Total)
			return nil
		},
	}
}
