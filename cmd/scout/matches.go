package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/squareleg/scout/pkg/cricapi"
	"github.com/squareleg/scout/pkg/logger"
)

func newMatchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "List live and upcoming matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(opts.debug)
			defer func() { _ = log.Sync() }()

			client, err := opts.newCricketClient(log)
			if err != nil {
				return err
			}

			matches, err := client.CurrentMatches(cmd.Context())
			if err != nil {
				return err
			}

			var live, upcoming []cricapi.Match
			for _, m := range matches {
				if m.Upcoming() {
					upcoming = append(upcoming, m)
				} else {
					live = append(live, m)
				}
			}

			fmt.Println("Live Matches")
			if len(live) == 0 {
				fmt.Println("  No live matches.")
			}
			for _, m := range live {
				printMatch(m)
			}

			fmt.Println("\nUpcoming Matches")
			if len(upcoming) == 0 {
				fmt.Println("  No upcoming matches.")
			}
			for _, m := range upcoming {
				printMatch(m)
			}
			return nil
		},
	}
}

func printMatch(m cricapi.Match) {
	fmt.Printf("  %s vs %s @ %s\n", m.Team1, m.Team2, m.Venue)
	for _, inn := range m.Score {
		fmt.Printf("    %s: %d/%d in %.1f overs\n", inn.Inning, inn.Runs, inn.Wickets, inn.Overs)
	}
	fmt.Printf("    Status: %s | ID: %s\n", m.Status, m.ID)
}
