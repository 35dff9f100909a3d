package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/squareleg/scout/pkg/fantasy"
	"github.com/squareleg/scout/pkg/logger"
)

func newXICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "xi <match-id>",
		Short: "Build a fantasy XI from a live or completed match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(opts.debug)
			defer func() { _ = log.Sync() }()

			client, err := opts.newCricketClient(log)
			if err != nil {
				return err
			}

			card, err := client.Scorecard(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Match: %s\nStatus: %s\n\n", card.Name, card.Status)

			xi := fantasy.SelectXI(card)
			if len(xi) == 0 {
				fmt.Println("No XI could be built.")
				return nil
			}

			printXI(xi)
			return nil
		},
	}
}

func printXI(xi []fantasy.Pick) {
	for i, p := range xi {
		tag := ""
		switch {
		case p.Captain:
			tag = " (C)"
		case p.ViceCaptain:
			tag = " (VC)"
		}
		fmt.Printf("%2d. %s%s", i+1, p.Name, tag)
		if p.Team != "" {
			fmt.Printf(" - %s", p.Team)
		}
		fmt.Printf("\n    Runs: %.1f, Wickets: %.1f, Score: %.1f\n", p.Runs, p.Wickets, p.Score)
	}
}
