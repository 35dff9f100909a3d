package main

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/squareleg/scout/pkg/cricapi"
	"github.com/squareleg/scout/pkg/embedder"
	"github.com/squareleg/scout/pkg/scout"
)

const rootLongDesc = `Scout is a fantasy cricket assistant.

It answers free-text questions from a semantic index over player stats,
match conditions and FAQs, and builds fantasy XIs from live or upcoming
matches.

Data sources default to the data/ directory; point the --player-stats,
--match-conditions and --faqs flags elsewhere to override. API keys are
read from OPENAI_API_KEY and CRICKET_API_KEY (a .env file works).`

type rootOptions struct {
	playerStats     string
	matchConditions string
	faqs            string
	embedModel      string
	chatModel       string
	topK            int
	debug           bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "scout",
		Short:         "Fantasy cricket assistant",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.playerStats, "player-stats", "data/player_stats.json", "Path to the player stats JSON file")
	cmd.PersistentFlags().StringVar(&opts.matchConditions, "match-conditions", "data/match_conditions.json", "Path to the match conditions JSON file")
	cmd.PersistentFlags().StringVar(&opts.faqs, "faqs", "data/faqs.json", "Path to the FAQs JSON file")
	cmd.PersistentFlags().StringVar(&opts.embedModel, "embed-model", "text-embedding-3-small", "Embedding model name")
	cmd.PersistentFlags().StringVar(&opts.chatModel, "chat-model", openai.GPT3Dot5Turbo, "Chat completion model name")
	cmd.PersistentFlags().IntVarP(&opts.topK, "top", "k", scout.DefaultTopK, "Number of passages to retrieve")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(
		newAskCmd(opts),
		newChatCmd(opts),
		newMatchesCmd(opts),
		newXICmd(opts),
		newPredictCmd(opts),
	)

	return cmd
}

// newRetriever builds the retrieval engine from the configured sources.
func (o *rootOptions) newRetriever(ctx context.Context, logger *zap.Logger) (*scout.Retriever, error) {
	emb, err := embedder.NewOpenAIEmbedder(embedder.OpenAIConfig{Model: o.embedModel})
	if err != nil {
		return nil, err
	}

	return scout.NewRetriever(ctx, scout.Config{
		PlayerStatsPath:     o.playerStats,
		MatchConditionsPath: o.matchConditions,
		FAQsPath:            o.faqs,
		Embedder:            emb,
		Logger:              logger,
	})
}

func (o *rootOptions) newCricketClient(logger *zap.Logger) (*cricapi.Client, error) {
	key := os.Getenv("CRICKET_API_KEY")
	if key == "" {
		return nil, errors.New("CRICKET_API_KEY environment variable not set")
	}

	return cricapi.NewClient(cricapi.Config{APIKey: key, Logger: logger})
}
