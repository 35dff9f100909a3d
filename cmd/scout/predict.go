package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/squareleg/scout/pkg/fantasy"
	"github.com/squareleg/scout/pkg/loader"
	"github.com/squareleg/scout/pkg/logger"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <match-id>",
		Short: "Predict a fantasy XI for an upcoming match from historical averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			for _, m := range matches {
				if m.ID != args[0] {
					continue
				}
				if !m.Upcoming() {
					return fmt.Errorf("match %s has already started; use scout xi instead", m.ID)
				}

				data := loader.Load(opts.playerStats, opts.matchConditions, opts.faqs, log)
				xi := fantasy.PredictXI(m, data.Players)
				if len(xi) == 0 {
					fmt.Println("No XI could be built: no player stats for either team.")
					return nil
				}

				fmt.Printf("Predicted XI for %s vs %s @ %s\n\n", m.Team1, m.Team2, m.Venue)
				printXI(xi)
				return nil
			}

			return fmt.Errorf("no current match with id %s", args[0])
		},
	}
}
