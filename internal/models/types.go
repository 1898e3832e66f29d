package models

import (
	"errors"
	"fmt"
)

// Site represents a raidable land site offering a reward behind a guard force
type Site struct {
	Name      string  `yaml:"name"`
	Reward    float64 `yaml:"reward"`
	GuardCost int     `yaml:"guard_cost"`
}

// InvasionRatio returns guard cost per unit of reward, the ascending sort key
// for cheapest-first traversal. Reward must be nonzero; callers validate
// before keying a container on it.
func (s *Site) InvasionRatio() float64 {
	return float64(s.GuardCost) / s.Reward
}

// RewardRate returns the reward obtained by sending the given number of
// adventurers: proportional to the fraction of guards engaged, capped at the
// full reward. A site with no guards yields nothing (not a division fault).
func (s *Site) RewardRate(sent int) float64 {
	if s.GuardCost == 0 {
		return 0
	}
	return min(float64(sent)*s.Reward/float64(s.GuardCost), s.Reward)
}

// Validate checks the structural invariants common to both navigator modes
func (s *Site) Validate() error {
	if s.Name == "" {
		return errors.New("site has no name")
	}
	if s.Reward < 0 {
		return fmt.Errorf("site %s: negative reward %g", s.Name, s.Reward)
	}
	if s.GuardCost < 0 {
		return fmt.Errorf("site %s: negative guard cost %d", s.Name, s.GuardCost)
	}
	return nil
}

// Visit records one step of a ratio-ordered expedition plan
type Visit struct {
	Site *Site
	Sent int
}

// RewardObtained returns the reward collected by this visit
func (v Visit) RewardObtained() float64 {
	return v.Site.RewardRate(v.Sent)
}

// Raid records one team's decision during a simulated day.
// Site is nil when the team stayed home.
type Raid struct {
	Site *Site
	Sent int
}

// Attacked reports whether the team actually raided a site
func (r Raid) Attacked() bool {
	return r.Site != nil
}
