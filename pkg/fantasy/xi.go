// Package fantasy implements the fantasy-XI selection heuristics: building
// an XI from a live scorecard and predicting one for an upcoming match from
// historical averages.
package fantasy

import (
	"sort"

	"github.com/squareleg/scout/pkg/cricapi"
	"github.com/squareleg/scout/pkg/loader"
)

const (
	squadSize    = 11
	wicketWeight = 20
)

// Pick is one selected player with the score that earned the slot.
type Pick struct {
	Name        string
	Team        string
	Runs        float64
	Wickets     float64
	Score       float64
	Captain     bool
	ViceCaptain bool
}

// SelectXI builds a fantasy XI from a match scorecard. A player's score is
// runs plus twenty per wicket, accumulated across all innings. The first
// pick is captain, the second vice-captain.
func SelectXI(card *cricapi.Scorecard) []Pick {
	type tally struct {
		runs    int
		wickets int
	}
	totals := make(map[string]*tally)

	for _, innings := range card.Innings {
		for _, b := range innings.Batting {
			name := b.Batsman.Name
			if name == "" {
				continue
			}
			if totals[name] == nil {
				totals[name] = &tally{}
			}
			totals[name].runs += b.Runs
		}
		for _, bw := range innings.Bowling {
			name := bw.Bowler.Name
			if name == "" {
				continue
			}
			if totals[name] == nil {
				totals[name] = &tally{}
			}
			totals[name].wickets += bw.Wickets
		}
	}

	picks := make([]Pick, 0, len(totals))
	for name, t := range totals {
		picks = append(picks, Pick{
			Name:    name,
			Runs:    float64(t.runs),
			Wickets: float64(t.wickets),
			Score:   float64(t.runs + t.wickets*wicketWeight),
		})
	}

	return finalize(picks)
}

// PredictXI picks an XI for an upcoming match from historical averages. A
// player's score is average runs plus twenty per average wicket, plus the
// venue bonus when the player has a record at the match venue. Only players
// from the two competing teams are considered.
func PredictXI(match cricapi.Match, players []loader.PlayerStats) []Pick {
	var picks []Pick
	for _, p := range players {
		if p.Team != match.Team1 && p.Team != match.Team2 {
			continue
		}

		score := p.AverageRuns + p.AverageWickets*wicketWeight
		score += p.VenuePerformance[match.Venue].Bonus

		picks = append(picks, Pick{
			Name:    p.Player,
			Team:    p.Team,
			Runs:    p.AverageRuns,
			Wickets: p.AverageWickets,
			Score:   score,
		})
	}

	return finalize(picks)
}

// finalize orders picks by descending score (name breaks ties so the output
// is deterministic), truncates to squad size and flags the captaincy.
func finalize(picks []Pick) []Pick {
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Score != picks[j].Score {
			return picks[i].Score > picks[j].Score
		}
		return picks[i].Name < picks[j].Name
	})

	if len(picks) > squadSize {
		picks = picks[:squadSize]
	}
	if len(picks) > 0 {
		picks[0].Captain = true
	}
	if len(picks) > 1 {
		picks[1].ViceCaptain = true
	}
	return picks
}
