package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squareleg/scout/pkg/logger"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query>",
		Short: "Retrieve the passages most relevant to a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(opts.debug)
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			r, err := opts.newRetriever(ctx, log)
			if err != nil {
				return err
			}

			docs, err := r.Retrieve(ctx, strings.Join(args, " "), opts.topK)
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println("No results found")
				return nil
			}

			for i, doc := range docs {
				if i > 0 {
					fmt.Println(strings.Repeat("-", 60))
				}
				fmt.Println(doc)
			}
			return nil
		},
	}
}
