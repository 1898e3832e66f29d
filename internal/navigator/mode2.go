package navigator

import (
	"fmt"

	"github.com/islecrest/expedition-solver/internal/models"
)

// Mode2Navigator simulates raiding days where a fixed number of independent
// teams each pick the best remaining target. Sites accumulate in an
// append-only buffer; every simulated day scores the whole buffer afresh
// for that day's budget and drains a max-priority queue one team at a time.
type Mode2Navigator struct {
	sites []*models.Site
	teams int
}

// NewMode2Navigator creates a day simulator for the given number of teams
func NewMode2Navigator(teams int) (*Mode2Navigator, error) {
	if teams < 1 {
		return nil, fmt.Errorf("team count must be positive, got %d", teams)
	}
	return &Mode2Navigator{teams: teams}, nil
}

// Teams returns the number of teams acting each simulated day
func (n *Mode2Navigator) Teams() int {
	return n.teams
}

// SiteCount returns the number of sites in the buffer
func (n *Mode2Navigator) SiteCount() int {
	return len(n.sites)
}

// AddSites appends sites to the buffer, preserving existing order and
// keeping the new sites in their input order. Sites are shared, never
// copied: raids mutate the caller's instances, so depletion from one day
// carries into the next. Nothing is appended if any site is invalid.
func (n *Mode2Navigator) AddSites(sites []*models.Site) error {
	for i, site := range sites {
		if site == nil {
			return fmt.Errorf("site %d is nil", i)
		}
		if err := site.Validate(); err != nil {
			return err
		}
	}
	n.sites = append(n.sites, sites...)
	return nil
}

// ComputeScore evaluates one site for a raiding round at the given budget,
// returning the round score, the reward the raid would collect, and the
// adventurers left over. Pure: no state is read besides the site's fields
// and nothing is mutated.
func (n *Mode2Navigator) ComputeScore(site *models.Site, perRoundBudget int) (score, rewardObtained float64, leftover int) {
	return computeScore(site, perRoundBudget)
}

// buildDayQueue scores every buffered site at the day's budget and
// bulk-builds the max-priority queue for the round loop
func (n *Mode2Navigator) buildDayQueue(perRoundBudget int) *ScoreQueue {
	entries := make([]ScoredSite, len(n.sites))
	for i, site := range n.sites {
		score, _, _ := computeScore(site, perRoundBudget)
		entries[i] = ScoredSite{Site: site, Score: score}
	}
	return NewScoreQueue(entries)
}

// SimulateDay runs one day: each team in turn pops the best-scoring site
// and attacks it only when that strictly beats staying home. An attack
// depletes the site's guards by the adventurers sent and its reward by the
// amount collected (floored at zero), then requeues it at its new score. A
// popped site that fails the threshold is not requeued, and since scores
// only drop as sites deplete, every later team that day stays home too.
// The result always has exactly one entry per team, in team order.
func (n *Mode2Navigator) SimulateDay(perRoundBudget int) ([]models.Raid, error) {
	if perRoundBudget < 0 {
		return nil, fmt.Errorf("per-round budget must be non-negative, got %d", perRoundBudget)
	}

	queue := n.buildDayQueue(perRoundBudget)
	stayHomeScore := LeftoverWeight * float64(perRoundBudget)

	raids := make([]models.Raid, 0, n.teams)
	for team := 0; team < n.teams; team++ {
		entry, ok := queue.Pop()
		if !ok || entry.Score <= stayHomeScore {
			raids = append(raids, models.Raid{})
			continue
		}

		site := entry.Site
		_, rewardObtained, leftover := computeScore(site, perRoundBudget)
		sent := perRoundBudget - leftover
		raids = append(raids, models.Raid{Site: site, Sent: sent})

		site.GuardCost -= sent
		site.Reward = max(0, site.Reward-rewardObtained)

		newScore, _, _ := computeScore(site, perRoundBudget)
		queue.Push(ScoredSite{Site: site, Score: newScore})
	}

	return raids, nil
}
