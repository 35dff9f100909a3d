// Package assistant answers fantasy-cricket questions by combining passages
// from the retrieval engine with live match context and a chat completion
// model.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/squareleg/scout/pkg/cricapi"
	"github.com/squareleg/scout/pkg/scout"
)

const systemPrompt = "You are a helpful fantasy cricket assistant. Use context to answer."

// ChatClient is the slice of the OpenAI client the assistant needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// MatchSource supplies live match listings for chat context. The cricapi
// client satisfies it.
type MatchSource interface {
	CurrentMatches(ctx context.Context) ([]cricapi.Match, error)
}

// Config wires an Assistant's collaborators.
type Config struct {
	Retriever *scout.Retriever
	Chat      ChatClient

	// Matches is optional; when set, today's fixtures are appended to the
	// chat context.
	Matches MatchSource

	// Model defaults to gpt-3.5-turbo.
	Model string

	// TopK defaults to scout.DefaultTopK.
	TopK int

	// Logger is optional; nil disables logging.
	Logger *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Assistant orchestrates one question/answer turn.
type Assistant struct {
	retriever *scout.Retriever
	chat      ChatClient
	matches   MatchSource
	model     string
	topK      int
	logger    *zap.Logger
	now       func() time.Time
}

// New creates an Assistant.
func New(cfg Config) (*Assistant, error) {
	if cfg.Retriever == nil {
		return nil, errors.New("retriever is required")
	}
	if cfg.Chat == nil {
		return nil, errors.New("chat client is required")
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = scout.DefaultTopK
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Assistant{
		retriever: cfg.Retriever,
		chat:      cfg.Chat,
		matches:   cfg.Matches,
		model:     model,
		topK:      topK,
		logger:    logger,
		now:       now,
	}, nil
}

// Answer retrieves context for the question and asks the chat model for an
// answer. A live-match lookup failure degrades to retrieval-only context; a
// retrieval or chat failure surfaces to the caller.
func (a *Assistant) Answer(ctx context.Context, question string) (string, error) {
	docs, err := a.retriever.Retrieve(ctx, question, a.topK)
	if err != nil {
		return "", fmt.Errorf("retrieving context: %w", err)
	}

	contextText := strings.Join(docs, "\n")
	if today := a.todaysMatches(ctx); len(today) > 0 {
		var lines []string
		for _, m := range today {
			lines = append(lines, m.Team1+" vs "+m.Team2)
		}
		contextText += "\n\nToday's matches:\n" + strings.Join(lines, "\n")
	}

	resp, err := a.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.7,
		MaxTokens:   500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Context:\n%s\n\nQ: %s", contextText, question)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (a *Assistant) todaysMatches(ctx context.Context) []cricapi.Match {
	if a.matches == nil {
		return nil
	}

	matches, err := a.matches.CurrentMatches(ctx)
	if err != nil {
		a.logger.Warn("live match context unavailable", zap.Error(err))
		return nil
	}

	day := a.now().UTC().Format("2006-01-02")
	return cricapi.TodaysMatches(matches, day)
}
