package commands

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

func trackCmd() *cobra.Command {
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "track <order-id>",
		Short: "Follow a delivery live until it arrives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dest := domain.LatLng{Latitude: lat, Longitude: lng}
			updates := wire.Tracker.Start(ctx, orderID, dest)
			defer wire.Tracker.Stop()

			var lastLine string
			for st := range updates {
				line := renderState(st)
				if line == lastLine {
					continue
				}
				lastLine = line
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "destination latitude (for ETA)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "destination longitude (for ETA)")
	return cmd
}

func renderState(st domain.TrackingState) string {
	line := st.Phase.String()
	if st.Animated != nil {
		line += fmt.Sprintf("  partner at %.5f,%.5f", st.Animated.Current.Latitude, st.Animated.Current.Longitude)
	}
	if st.Route != nil {
		line += fmt.Sprintf("  eta %s", st.Route.ETA.Round(time.Second))
	}
	if st.ConnectionIssue {
		line += "  [connection issue, retrying]"
	}
	if st.ShouldStopTracking {
		line += "  delivered!"
	}
	return line
}
