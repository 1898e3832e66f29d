package models

import (
	"errors"
	"fmt"
)

// Scenario describes an expedition setup loaded from a YAML file.
// Budget and ProbeBudgets drive the ratio-ordered planner; Teams,
// DailyBudget and Days drive the day simulator. A scenario may carry
// either set or both.
type Scenario struct {
	Sites        []*Site `yaml:"sites"`
	Budget       int     `yaml:"budget"`
	ProbeBudgets []int   `yaml:"probe_budgets,omitempty"`
	Teams        int     `yaml:"teams,omitempty"`
	DailyBudget  int     `yaml:"daily_budget,omitempty"`
	Days         int     `yaml:"days,omitempty"`
}

// Validate checks the parts of a scenario that every consumer needs
func (sc *Scenario) Validate() error {
	if len(sc.Sites) == 0 {
		return errors.New("scenario has no sites")
	}
	for i, site := range sc.Sites {
		if site == nil {
			return fmt.Errorf("site %d is empty", i)
		}
		if err := site.Validate(); err != nil {
			return err
		}
	}
	if sc.Budget < 0 {
		return fmt.Errorf("negative budget %d", sc.Budget)
	}
	for _, b := range sc.ProbeBudgets {
		if b < 0 {
			return fmt.Errorf("negative probe budget %d", b)
		}
	}
	if sc.DailyBudget < 0 {
		return fmt.Errorf("negative daily budget %d", sc.DailyBudget)
	}
	if sc.Days < 0 {
		return fmt.Errorf("negative day count %d", sc.Days)
	}
	return nil
}
