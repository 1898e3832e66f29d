package navigator

import (
	"github.com/islecrest/expedition-solver/internal/models"
)

// LeftoverWeight is the score value of each adventurer kept home. A team
// that attacks nothing scores LeftoverWeight times its full budget, so a
// raid is only worth launching when its score strictly beats that.
const LeftoverWeight = 2.5

// computeScore evaluates a site for one raiding round at the given budget.
// The team engages min(guards, budget) adventurers, collects reward in
// proportion to the guards engaged (capped at the full reward, zero when
// the site is unguarded), and banks the rest of the budget as leftover.
func computeScore(site *models.Site, perRoundBudget int) (score, rewardObtained float64, leftover int) {
	needed := min(site.GuardCost, perRoundBudget)
	rewardObtained = site.RewardRate(needed)
	leftover = perRoundBudget - needed
	score = LeftoverWeight*float64(leftover) + rewardObtained
	return score, rewardObtained, leftover
}
