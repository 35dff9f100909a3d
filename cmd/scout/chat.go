package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/squareleg/scout/pkg/assistant"
	"github.com/squareleg/scout/pkg/logger"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <question>",
		Short: "Ask the assistant a fantasy cricket question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(opts.debug)
			defer func() { _ = log.Sync() }()

			apiKey := os.Getenv("OPENAI_API_KEY")
			if apiKey == "" {
				return errors.New("OPENAI_API_KEY environment variable not set")
			}

			ctx := cmd.Context()
			r, err := opts.newRetriever(ctx, log)
			if err != nil {
				return err
			}

			cfg := assistant.Config{
				Retriever: r,
				Chat:      openai.NewClient(apiKey),
				Model:     opts.chatModel,
				TopK:      opts.topK,
				Logger:    log,
			}

			// Live match context is best-effort; chat works without it.
			if cricket, err := opts.newCricketClient(log); err != nil {
				log.Warn("live match context disabled", zap.Error(err))
			} else {
				cfg.Matches = cricket
			}

			a, err := assistant.New(cfg)
			if err != nil {
				return err
			}

			answer, err := a.Answer(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Println(answer)
			return nil
		},
	}
}
