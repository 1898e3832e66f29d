package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/islecrest/expedition-solver/internal/models"
)

// LoadScenario reads a scenario YAML file, applies defaults and validates it
func LoadScenario(path string) (*models.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario decodes scenario YAML from a byte slice. A missing day
// count defaults to a single simulated day.
func ParseScenario(data []byte) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	if scenario.Days == 0 {
		scenario.Days = 1
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}
