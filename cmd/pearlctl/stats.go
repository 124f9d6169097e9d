package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show visit and content statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}

			stats, err := c.AnalyticsStats(cmd.Context())
			if err != nil {
				return err
			}
			counters, err := c.ContentCounters(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Today:   %d views, %d visitors\n", stats.TodayPV, stats.TodayUV)
			fmt.Printf("Week:    %d views\n", stats.WeekPV)
			fmt.Printf("Month:   %d views\n", stats.MonthPV)
			fmt.Printf("Total:   %d views\n", stats.TotalPV)

			fmt.Println("\nLast 7 days:")
			for _, day := range stats.DailyStats {
				fmt.Printf("  %s  %d\n", day.Date, day.PV)
			}

			if len(stats.TopPages) > 0 {
				fmt.Println("\nTop pages:")
				for _, page := range stats.TopPages {
					fmt.Printf("  %-32s %d\n", page.Path, page.Count)
				}
			}

			fmt.Printf("\nCatalog: %d pieces (%d visible), %d images\n",
				counters.JewelryCount, counters.VisibleCount, counters.ImageCount)
			return nil
		},
	}
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate Chinese text to English",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := requireLogin()
			if err != nil {
				return err
			}
			translated, err := c.Translate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(translated)
			return nil
		},
	}
}
