package navigator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/islecrest/expedition-solver/internal/bst"
	"github.com/islecrest/expedition-solver/internal/models"
)

var (
	// ErrZeroReward marks a site whose invasion ratio is undefined
	ErrZeroReward = errors.New("site reward is zero")
	// ErrDuplicateRatio marks two sites that would collide on the same
	// container key
	ErrDuplicateRatio = errors.New("duplicate invasion ratio")
)

// Mode1Navigator plans expeditions over a fixed site set. Sites live in a
// search tree keyed by invasion ratio, so a plan is a single ascending
// walk: cheapest guards-per-reward first, the fractional-knapsack order
// that maximizes reward for a fixed adventurer budget.
type Mode1Navigator struct {
	sites  *bst.Tree[*models.Site]
	budget int
}

// NewMode1Navigator builds a navigator over the given sites with a total
// adventurer budget. Every site needs a nonzero reward (the ratio key is
// guards divided by reward) and ratios must be unique across the set; the
// budget must be non-negative. The tree is built median-first from the
// ratio-sorted list, which roughly halves its depth compared to inserting
// the sorted order directly. That balance is not maintained by later
// UpdateSite calls.
func NewMode1Navigator(sites []*models.Site, budget int) (*Mode1Navigator, error) {
	if budget < 0 {
		return nil, fmt.Errorf("budget must be non-negative, got %d", budget)
	}
	for i, site := range sites {
		if site == nil {
			return nil, fmt.Errorf("site %d is nil", i)
		}
		if err := site.Validate(); err != nil {
			return nil, err
		}
		if site.Reward == 0 {
			return nil, fmt.Errorf("site %s: %w", site.Name, ErrZeroReward)
		}
	}

	sorted := make([]*models.Site, len(sites))
	copy(sorted, sites)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].InvasionRatio() < sorted[j].InvasionRatio()
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].InvasionRatio() == sorted[i-1].InvasionRatio() {
			return nil, fmt.Errorf("sites %s and %s: %w",
				sorted[i-1].Name, sorted[i].Name, ErrDuplicateRatio)
		}
	}

	return &Mode1Navigator{
		sites:  buildFromSorted(sorted),
		budget: budget,
	}, nil
}

// buildFromSorted inserts a ratio-sorted site list median-first: the middle
// element becomes the root, then the lower half is inserted walking down
// toward index zero, then the upper half walking up toward the end
func buildFromSorted(sorted []*models.Site) *bst.Tree[*models.Site] {
	tree := bst.New[*models.Site]()
	if len(sorted) == 0 {
		return tree
	}
	mid := len(sorted) / 2
	tree.Set(sorted[mid].InvasionRatio(), sorted[mid])
	for i := mid - 1; i >= 0; i-- {
		tree.Set(sorted[i].InvasionRatio(), sorted[i])
	}
	for i := mid + 1; i < len(sorted); i++ {
		tree.Set(sorted[i].InvasionRatio(), sorted[i])
	}
	return tree
}

// Budget returns the navigator's total adventurer budget
func (n *Mode1Navigator) Budget() int {
	return n.budget
}

// SiteCount returns the number of sites under management
func (n *Mode1Navigator) SiteCount() int {
	return n.sites.Len()
}

// Lookup returns the site stored at the given invasion ratio
func (n *Mode1Navigator) Lookup(ratio float64) (*models.Site, bool) {
	return n.sites.Get(ratio)
}

// SelectSites walks sites in ascending ratio order, sending as many
// adventurers as each site's guards require until the budget runs out or
// every site has been visited. Sites are not mutated; the same plan can be
// recomputed any number of times.
func (n *Mode1Navigator) SelectSites() []models.Visit {
	visits := make([]models.Visit, 0)
	remaining := n.budget

	n.sites.Ascend(func(_ float64, site *models.Site) bool {
		if remaining <= 0 {
			return false
		}
		sent := min(remaining, site.GuardCost)
		visits = append(visits, models.Visit{Site: site, Sent: sent})
		remaining -= sent
		return true
	})

	return visits
}

// SelectSitesFromAdventureNumbers computes the total reward a plan would
// collect for each candidate budget, one result per input. The stored
// budget is only overwritten for the duration of the call; the navigator
// is returned to its prior state before this method returns.
func (n *Mode1Navigator) SelectSitesFromAdventureNumbers(budgets []int) ([]float64, error) {
	for _, b := range budgets {
		if b < 0 {
			return nil, fmt.Errorf("budget must be non-negative, got %d", b)
		}
	}

	saved := n.budget
	defer func() { n.budget = saved }()

	totals := make([]float64, 0, len(budgets))
	for _, b := range budgets {
		n.budget = b
		total := 0.0
		for _, v := range n.SelectSites() {
			total += v.RewardObtained()
		}
		totals = append(totals, total)
	}
	return totals, nil
}

// UpdateSite changes a managed site's reward and guard cost. The entry is
// removed under the site's current ratio, mutated, and reinserted under
// the recomputed one; a mutation never leaves a stale key in the tree.
// The site must be the exact instance held by the navigator: if its
// current ratio matches no entry the call fails with ErrKeyNotFound and
// neither the tree nor the site is touched.
func (n *Mode1Navigator) UpdateSite(site *models.Site, newReward float64, newGuardCost int) error {
	if site == nil {
		return errors.New("site is nil")
	}
	if newReward < 0 {
		return fmt.Errorf("site %s: negative reward %g", site.Name, newReward)
	}
	if newReward == 0 {
		return fmt.Errorf("site %s: %w", site.Name, ErrZeroReward)
	}
	if newGuardCost < 0 {
		return fmt.Errorf("site %s: negative guard cost %d", site.Name, newGuardCost)
	}

	newRatio := float64(newGuardCost) / newReward
	if other, ok := n.sites.Get(newRatio); ok && other != site {
		return fmt.Errorf("sites %s and %s: %w", site.Name, other.Name, ErrDuplicateRatio)
	}

	if err := n.sites.Delete(site.InvasionRatio()); err != nil {
		return fmt.Errorf("update %s: %w", site.Name, err)
	}
	site.Reward = newReward
	site.GuardCost = newGuardCost
	n.sites.Set(site.InvasionRatio(), site)
	return nil
}
