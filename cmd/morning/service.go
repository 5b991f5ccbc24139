package main

import (
	"github.com/spf13/cobra"

	"github.com/chris/morning/internal/service"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage the launchd background service (macOS)",
}

func init() {
	for _, c := range []struct {
		use, short string
		fn         func() error
	}{
		{"install", "Install the binary and load the launchd agent", service.Install},
		{"uninstall", "Unload the agent and remove the binary", service.Uninstall},
		{"start", "Start the service", service.Start},
		{"stop", "Stop the service", service.Stop},
		{"restart", "Restart the service", service.Restart},
		{"status", "Show launchd status", service.Status},
		{"logs", "Tail the service logs", service.Logs},
	} {
		fn := c.fn
		serviceCmd.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return fn() },
		})
	}
}
