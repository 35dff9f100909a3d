// Package loader reads the structured data sources (player stats, match
// conditions, FAQs) and turns them into the ordered passage corpus used
// by the retrieval engine. The raw records are kept around as well, since
// the fantasy-XI heuristics consume them directly.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// VenueRecord is a player's historical record at one venue.
type VenueRecord struct {
	Bonus float64 `json:"bonus"`
}

// PlayerStats is one player record from the player-stats source.
type PlayerStats struct {
	Player           string                 `json:"player"`
	Role             string                 `json:"role"`
	FormLast5        string                 `json:"form_last_5_matches"`
	PitchPerformance string                 `json:"pitch_performance"`
	AverageRuns      float64                `json:"average_runs"`
	AverageWickets   float64                `json:"average_wickets"`
	Team             string                 `json:"team"`
	VenuePerformance map[string]VenueRecord `json:"venue_performance"`
}

// MatchConditions is the single record describing the upcoming match.
type MatchConditions struct {
	Venue      string `json:"venue"`
	Pitch      string `json:"pitch"`
	Weather    string `json:"weather"`
	Opposition string `json:"opposition"`
}

// FAQ is one question/answer pair from the FAQs source.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Data holds the raw records loaded from all three sources.
type Data struct {
	Players    []PlayerStats
	Conditions *MatchConditions
	FAQs       []FAQ
}

// Load reads the three JSON sources. Each source is optional in the sense
// that a missing or malformed file degrades to an empty record set for that
// source with a logged warning; it never fails the whole load. An empty
// faqsPath skips the FAQs source entirely.
func Load(playerStatsPath, matchConditionsPath, faqsPath string, logger *zap.Logger) *Data {
	if logger == nil {
		logger = zap.NewNop()
	}

	data := &Data{}

	readJSON(playerStatsPath, &data.Players, logger)

	var cond MatchConditions
	if readJSON(matchConditionsPath, &cond, logger) && cond != (MatchConditions{}) {
		data.Conditions = &cond
	}

	if faqsPath != "" {
		readJSON(faqsPath, &data.FAQs, logger)
	}

	return data
}

// Passages assembles the retrieval corpus in a fixed order: one passage per
// player record, then the match-conditions summary (when present), then one
// passage per usable FAQ pair. The order is load-bearing: a passage's
// position is its only link to its embedding vector.
func (d *Data) Passages() []string {
	var passages []string

	for _, p := range d.Players {
		passages = append(passages, fmt.Sprintf(
			"%s is a %s.\nRecent Form: %s.\nPitch Performance: %s.",
			orDefault(p.Player, "Unknown player"),
			orDefault(p.Role, "Unknown role"),
			orDefault(p.FormLast5, "N/A"),
			orDefault(p.PitchPerformance, "N/A"),
		))
	}

	if c := d.Conditions; c != nil {
		passages = append(passages, fmt.Sprintf(
			"Venue: %s. Pitch Type: %s. Weather Forecast: %s. Opponent: %s.",
			orDefault(c.Venue, "Unknown"),
			orDefault(c.Pitch, "Unknown"),
			orDefault(c.Weather, "Unknown"),
			orDefault(c.Opposition, "Unknown"),
		))
	}

	for _, faq := range d.FAQs {
		question := strings.TrimSpace(faq.Question)
		answer := strings.TrimSpace(faq.Answer)
		if question == "" || answer == "" {
			continue
		}
		passages = append(passages, "Q: "+question+"\nA: "+answer)
	}

	return passages
}

// readJSON loads path into v. Returns false (after logging a warning) when
// the file is missing or does not parse; v is left untouched in that case.
func readJSON(path string, v any, logger *zap.Logger) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping data source", zap.String("path", path), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		logger.Warn("skipping malformed data source", zap.String("path", path), zap.Error(err))
		return false
	}

	return true
}

// orDefault resolves a field's fallback placeholder once at load time so
// downstream passage text is deterministic.
func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
