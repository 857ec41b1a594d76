package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"swiftdrop/internal/domain"
)

// The push surface is in-process on the phone; here the payload arrives as
// a JSON argument so the bridge path can be driven end to end.
func pushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Drive the push-notification bridge",
	}
	cmd.AddCommand(pushSimulateCmd(), pushTokenCmd())
	return cmd
}

func pushSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <payload-json>",
		Short: "Feed a remote push payload to the bridge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p domain.PushPayload
			if err := json.Unmarshal([]byte(args[0]), &p); err != nil {
				return fmt.Errorf("invalid payload: %w", err)
			}
			return wire.Bridge.HandlePush(p)
		},
	}
}

func pushTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <device-token>",
		Short: "Forward a new device push token to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Bridge.HandleNewToken(cmd.Context(), args[0])
			return nil
		},
	}
}
