package navigator_test

import (
	"testing"

	"github.com/islecrest/expedition-solver/internal/models"
	"github.com/islecrest/expedition-solver/internal/navigator"
)

// setupCampaign builds the three-site day-simulation scenario with five
// teams and fresh site instances per test (days mutate them)
func setupCampaign(t *testing.T) (*navigator.Mode2Navigator, []*models.Site) {
	t.Helper()

	sites := []*models.Site{
		{Name: "Amber Keep", Reward: 400, GuardCost: 100},
		{Name: "Basalt Fort", Reward: 750, GuardCost: 120},
		{Name: "Cinder Tower", Reward: 200, GuardCost: 30},
	}

	nav, err := navigator.NewMode2Navigator(5)
	if err != nil {
		t.Fatalf("Failed to build navigator: %v", err)
	}
	if err := nav.AddSites(sites); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}
	return nav, sites
}

func assertRaids(t *testing.T, raids []models.Raid, expected []models.Raid) {
	t.Helper()

	if len(raids) != len(expected) {
		t.Fatalf("Expected %d raids, got %d", len(expected), len(raids))
	}
	for i, raid := range raids {
		if raid.Attacked() != expected[i].Attacked() {
			t.Errorf("Team %d: expected attacked=%v, got %v", i+1, expected[i].Attacked(), raid.Attacked())
			continue
		}
		if !raid.Attacked() {
			if raid.Sent != 0 {
				t.Errorf("Team %d: stay-home raid must send 0, got %d", i+1, raid.Sent)
			}
			continue
		}
		if raid.Site.Name != expected[i].Site.Name {
			t.Errorf("Team %d: expected target %s, got %s", i+1, expected[i].Site.Name, raid.Site.Name)
		}
		if raid.Sent != expected[i].Sent {
			t.Errorf("Team %d: expected %d adventurers, got %d", i+1, expected[i].Sent, raid.Sent)
		}
	}
}

func TestSimulateDayDispatchSequence(t *testing.T) {
	nav, sites := setupCampaign(t)

	raids, err := nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Fort scores highest, the depleted fort is worth a second raid, and
	// the fifth team finds nothing that beats staying home
	assertRaids(t, raids, []models.Raid{
		{Site: sites[1], Sent: 100},
		{Site: sites[0], Sent: 100},
		{Site: sites[2], Sent: 30},
		{Site: sites[1], Sent: 20},
		{},
	})
}

func TestSimulateDayDepletesSites(t *testing.T) {
	nav, sites := setupCampaign(t)

	if _, err := nav.SimulateDay(100); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Four raids drain every site completely
	for _, site := range sites {
		if site.GuardCost != 0 {
			t.Errorf("Site %s: expected 0 guards left, got %d", site.Name, site.GuardCost)
		}
		if site.Reward != 0 {
			t.Errorf("Site %s: expected 0 reward left, got %v", site.Name, site.Reward)
		}
	}
}

func TestSimulateDayResultPerTeam(t *testing.T) {
	nav, _ := setupCampaign(t)

	for day := 1; day <= 3; day++ {
		raids, err := nav.SimulateDay(100)
		if err != nil {
			t.Fatalf("Day %d: unexpected error: %v", day, err)
		}
		if len(raids) != nav.Teams() {
			t.Errorf("Day %d: expected %d results, got %d", day, nav.Teams(), len(raids))
		}
	}
}

func TestSimulateDayAfterDepletionAllStayHome(t *testing.T) {
	nav, _ := setupCampaign(t)

	if _, err := nav.SimulateDay(100); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	raids, err := nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, raid := range raids {
		if raid.Attacked() {
			t.Errorf("Team %d: expected stay-home against drained sites, attacked %s", i+1, raid.Site.Name)
		}
	}
}

func TestSimulateDayEmptyBuffer(t *testing.T) {
	nav, err := navigator.NewMode2Navigator(4)
	if err != nil {
		t.Fatalf("Failed to build navigator: %v", err)
	}

	raids, err := nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(raids) != 4 {
		t.Fatalf("Expected one result per team, got %d", len(raids))
	}
	for i, raid := range raids {
		if raid.Attacked() {
			t.Errorf("Team %d: expected stay-home with no sites", i+1)
		}
	}
}

func TestSimulateDayThresholdIsStrict(t *testing.T) {
	// Full engagement of 10 guards for exactly 25 reward scores
	// 2.5*40 + 25 = 125, the same as keeping all 50 home
	even := []*models.Site{{Name: "Breakeven Camp", Reward: 25, GuardCost: 10}}
	nav, err := navigator.NewMode2Navigator(1)
	if err != nil {
		t.Fatalf("Failed to build navigator: %v", err)
	}
	if err := nav.AddSites(even); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}

	raids, err := nav.SimulateDay(50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if raids[0].Attacked() {
		t.Error("A raid matching the stay-home score must not launch")
	}
	if even[0].GuardCost != 10 || even[0].Reward != 25 {
		t.Error("A rejected site must not be mutated")
	}

	// A hair more reward tips the decision
	better := []*models.Site{{Name: "Breakeven Camp", Reward: 26, GuardCost: 10}}
	nav2, _ := navigator.NewMode2Navigator(1)
	if err := nav2.AddSites(better); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}

	raids, err = nav2.SimulateDay(50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !raids[0].Attacked() {
		t.Error("A raid strictly beating the stay-home score must launch")
	}
	if raids[0].Sent != 10 {
		t.Errorf("Expected 10 adventurers sent, got %d", raids[0].Sent)
	}
}

func TestSimulateDayZeroBudget(t *testing.T) {
	nav, _ := setupCampaign(t)

	raids, err := nav.SimulateDay(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, raid := range raids {
		if raid.Attacked() {
			t.Errorf("Team %d: expected stay-home with zero budget", i+1)
		}
	}
}

func TestSimulateDayNegativeBudget(t *testing.T) {
	nav, _ := setupCampaign(t)

	if _, err := nav.SimulateDay(-1); err == nil {
		t.Fatal("Expected error for negative budget")
	}
}

func TestSimulateDayZeroGuardSiteNotWorthRaiding(t *testing.T) {
	// No guards means no reward, so the score never beats staying home
	sites := []*models.Site{{Name: "Empty Camp", Reward: 900, GuardCost: 0}}
	nav, _ := navigator.NewMode2Navigator(2)
	if err := nav.AddSites(sites); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}

	raids, err := nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, raid := range raids {
		if raid.Attacked() {
			t.Errorf("Team %d: expected stay-home against an unguarded site", i+1)
		}
	}
	if sites[0].Reward != 900 {
		t.Errorf("Rejected site must keep its reward, got %v", sites[0].Reward)
	}
}

func TestNewMode2NavigatorValidation(t *testing.T) {
	for _, teams := range []int{0, -3} {
		if _, err := navigator.NewMode2Navigator(teams); err == nil {
			t.Errorf("Expected error for %d teams", teams)
		}
	}

	nav, err := navigator.NewMode2Navigator(5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if nav.Teams() != 5 {
		t.Errorf("Expected 5 teams, got %d", nav.Teams())
	}
	if nav.SiteCount() != 0 {
		t.Errorf("Expected empty buffer, got %d sites", nav.SiteCount())
	}
}

func TestAddSitesRejectsWholeBatch(t *testing.T) {
	nav, err := navigator.NewMode2Navigator(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	batch := []*models.Site{
		{Name: "Amber Keep", Reward: 400, GuardCost: 100},
		nil,
	}
	if err := nav.AddSites(batch); err == nil {
		t.Fatal("Expected error for batch containing nil site")
	}
	if nav.SiteCount() != 0 {
		t.Errorf("Failed batch must not be partially added, got %d sites", nav.SiteCount())
	}

	invalid := []*models.Site{{Name: "Amber Keep", Reward: -4, GuardCost: 100}}
	if err := nav.AddSites(invalid); err == nil {
		t.Fatal("Expected error for invalid site")
	}
	if nav.SiteCount() != 0 {
		t.Errorf("Failed batch must not be added, got %d sites", nav.SiteCount())
	}
}

func TestAddSitesAccumulates(t *testing.T) {
	nav, _ := setupCampaign(t)

	more := []*models.Site{
		{Name: "Dune Outpost", Reward: 320, GuardCost: 80},
		{Name: "Elder Grove", Reward: 150, GuardCost: 40},
	}
	if err := nav.AddSites(more); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if nav.SiteCount() != 5 {
		t.Errorf("Expected 5 sites after second batch, got %d", nav.SiteCount())
	}
}

func TestAddSitesBetweenDays(t *testing.T) {
	sites := []*models.Site{{Name: "Amber Keep", Reward: 400, GuardCost: 100}}
	nav, _ := navigator.NewMode2Navigator(1)
	if err := nav.AddSites(sites); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}

	raids, err := nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertRaids(t, raids, []models.Raid{{Site: sites[0], Sent: 100}})

	// A site scouted overnight joins the next day's queue
	scouted := []*models.Site{{Name: "Fallen Spire", Reward: 300, GuardCost: 40}}
	if err := nav.AddSites(scouted); err != nil {
		t.Fatalf("Failed to add sites: %v", err)
	}

	raids, err = nav.SimulateDay(100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertRaids(t, raids, []models.Raid{{Site: scouted[0], Sent: 40}})
}

func TestComputeScore(t *testing.T) {
	nav, _ := navigator.NewMode2Navigator(1)

	tests := []struct {
		name     string
		site     models.Site
		budget   int
		score    float64
		reward   float64
		leftover int
	}{
		{"full budget engaged", models.Site{Name: "A", Reward: 400, GuardCost: 100}, 100, 400, 400, 0},
		{"partial engagement", models.Site{Name: "C", Reward: 200, GuardCost: 30}, 100, 375, 200, 70},
		{"guards exceed budget", models.Site{Name: "B", Reward: 750, GuardCost: 120}, 100, 625, 625, 0},
		{"unguarded site", models.Site{Name: "E", Reward: 120, GuardCost: 0}, 100, 250, 0, 100},
		{"zero budget", models.Site{Name: "A", Reward: 400, GuardCost: 100}, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		site := tt.site
		score, reward, leftover := nav.ComputeScore(&site, tt.budget)
		if score != tt.score {
			t.Errorf("%s: expected score %v, got %v", tt.name, tt.score, score)
		}
		if reward != tt.reward {
			t.Errorf("%s: expected reward %v, got %v", tt.name, tt.reward, reward)
		}
		if leftover != tt.leftover {
			t.Errorf("%s: expected leftover %d, got %d", tt.name, tt.leftover, leftover)
		}
	}
}
