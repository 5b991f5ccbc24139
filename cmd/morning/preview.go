package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris/morning/internal/anniversary"
	"github.com/chris/morning/internal/compose"
)

var (
	previewOffline          bool
	previewStyle            string
	previewAnniversaryStyle string
	previewDate             string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Compose today's message and print it without sending",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available weather and anniversary styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var weatherStyles []string
		for _, s := range compose.DefaultStyles() {
			weatherStyles = append(weatherStyles, s.Name())
		}
		names := make([]string, len(anniversary.Styles))
		for i, s := range anniversary.Styles {
			names[i] = string(s)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "weather:     %s\n", strings.Join(weatherStyles, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "anniversary: %s\n", strings.Join(names, ", "))
		return nil
	},
}

func init() {
	previewCmd.Flags().BoolVar(&previewOffline, "offline", false, "use a sample forecast and skip network calls")
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "weather style (default: WEATHER_STYLE or random)")
	previewCmd.Flags().StringVar(&previewAnniversaryStyle, "anniversary-style", "", "anniversary style (default: ANNIVERSARY_STYLE or random)")
	previewCmd.Flags().StringVar(&previewDate, "date", "", "render as of this date (YYYY-MM-DD)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	a, err := newApp(appOptions{
		offline:          previewOffline,
		weatherStyle:     previewStyle,
		anniversaryStyle: previewAnniversaryStyle,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now().In(a.cfg.Location())
	if previewDate != "" {
		if now, err = time.ParseInLocation(time.DateOnly, previewDate, a.cfg.Location()); err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}

	msg, err := a.pipeline.Compose(cmd.Context(), now)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
