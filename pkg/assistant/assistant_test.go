package assistant

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareleg/scout/pkg/cricapi"
	"github.com/squareleg/scout/pkg/embedder"
	"github.com/squareleg/scout/pkg/scout"
)

type stubChat struct {
	lastRequest openai.ChatCompletionRequest
	reply       string
	err         error
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

type stubMatches struct {
	matches []cricapi.Match
	err     error
}

func (s *stubMatches) CurrentMatches(context.Context) ([]cricapi.Match, error) {
	return s.matches, s.err
}

func newTestRetriever(t *testing.T) *scout.Retriever {
	t.Helper()
	dir := t.TempDir()

	statsPath := filepath.Join(dir, "player_stats.json")
	require.NoError(t, os.WriteFile(statsPath, []byte(
		`[{"player": "Bumrah", "role": "Bowler", "form_last_5_matches": "2,3,1,4,2", "pitch_performance": "Swings the new ball"}]`,
	), 0o644))

	r, err := scout.NewRetriever(context.Background(), scout.Config{
		PlayerStatsPath: statsPath,
		Embedder:        embedder.NewHashEmbedder(32),
	})
	require.NoError(t, err)
	return r
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
}

func TestAnswer(t *testing.T) {
	chat := &stubChat{reply: "  Pick Bumrah.  "}
	a, err := New(Config{
		Retriever: newTestRetriever(t),
		Chat:      chat,
		Matches: &stubMatches{matches: []cricapi.Match{
			{Team1: "India", Team2: "Australia", StartTime: "2026-08-29T14:00:00"},
			{Team1: "England", Team2: "Pakistan", StartTime: "2026-09-02T10:00:00"},
		}},
		Now: fixedNow,
	})
	require.NoError(t, err)

	answer, err := a.Answer(context.Background(), "Which bowler should I pick?")
	require.NoError(t, err)
	assert.Equal(t, "Pick Bumrah.", answer)

	req := chat.lastRequest
	assert.Equal(t, openai.GPT3Dot5Turbo, req.Model)
	assert.EqualValues(t, 500, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "fantasy cricket assistant")

	user := req.Messages[1].Content
	assert.Contains(t, user, "Bumrah is a Bowler.")
	assert.Contains(t, user, "Today's matches:\nIndia vs Australia")
	assert.NotContains(t, user, "England vs Pakistan")
	assert.Contains(t, user, "Q: Which bowler should I pick?")
}

func TestAnswer_MatchLookupFailureDegrades(t *testing.T) {
	chat := &stubChat{reply: "ok"}
	a, err := New(Config{
		Retriever: newTestRetriever(t),
		Chat:      chat,
		Matches:   &stubMatches{err: errors.New("api down")},
		Now:       fixedNow,
	})
	require.NoError(t, err)

	answer, err := a.Answer(context.Background(), "Which bowler should I pick?")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.NotContains(t, chat.lastRequest.Messages[1].Content, "Today's matches")
}

func TestAnswer_ChatFailurePropagates(t *testing.T) {
	a, err := New(Config{
		Retriever: newTestRetriever(t),
		Chat:      &stubChat{err: errors.New("rate limited")},
	})
	require.NoError(t, err)

	_, err = a.Answer(context.Background(), "anything")
	assert.ErrorContains(t, err, "chat completion")
}

func TestAnswer_NoChoices(t *testing.T) {
	chat := &chatWithoutChoices{}
	a, err := New(Config{Retriever: newTestRetriever(t), Chat: chat})
	require.NoError(t, err)

	_, err = a.Answer(context.Background(), "anything")
	assert.ErrorContains(t, err, "no choices")
}

type chatWithoutChoices struct{}

func (chatWithoutChoices) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Chat: &stubChat{}})
	assert.Error(t, err)

	_, err = New(Config{Retriever: newTestRetriever(t)})
	assert.Error(t, err)
}
