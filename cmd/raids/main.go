package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/islecrest/expedition-solver/internal/loader"
	"github.com/islecrest/expedition-solver/internal/models"
	"github.com/islecrest/expedition-solver/internal/navigator"
)

var (
	scenarioPath    string
	teamsFlag       int
	dailyBudgetFlag int
	daysFlag        int
	quiet           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "raids",
		Short: "Daily Raid Campaign Simulator",
		Long: `Simulates a raid campaign: every day each team picks the
highest-scoring known site and attacks it when the expected
haul beats staying home.`,
		Run: runCampaign,
	}

	rootCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "examples/campaign.yaml", "Path to scenario YAML file")
	rootCmd.Flags().IntVarP(&teamsFlag, "teams", "t", -1, "Override the scenario team count")
	rootCmd.Flags().IntVarP(&dailyBudgetFlag, "daily-budget", "b", -1, "Override the per-team daily adventurer budget")
	rootCmd.Flags().IntVarP(&daysFlag, "days", "d", -1, "Override the number of campaign days")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Per-day tables off, summary only")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCampaign(cmd *cobra.Command, args []string) {
	// Colors
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Raid Campaign Simulator  │")
		titleColor.Println("│  Score-Greedy Dispatch    │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	// Load scenario
	scenario, err := loader.LoadScenario(scenarioPath)
	if err != nil {
		color.Red("Error loading scenario: %v", err)
		os.Exit(1)
	}

	teams := scenario.Teams
	if teamsFlag >= 0 {
		teams = teamsFlag
	}
	dailyBudget := scenario.DailyBudget
	if dailyBudgetFlag >= 0 {
		dailyBudget = dailyBudgetFlag
	}
	days := scenario.Days
	if daysFlag >= 0 {
		days = daysFlag
	}

	nav, err := navigator.NewMode2Navigator(teams)
	if err != nil {
		color.Red("Error building navigator: %v", err)
		os.Exit(1)
	}
	if err := nav.AddSites(scenario.Sites); err != nil {
		color.Red("Error registering sites: %v", err)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("📦 Loaded %d sites, %d teams, %d adventurers/team/day\n\n", len(scenario.Sites), teams, dailyBudget)
	}

	campaignReward := 0.0
	for day := 1; day <= days; day++ {
		rewardBefore := totalReward(scenario.Sites)
		raids, err := nav.SimulateDay(dailyBudget)
		if err != nil {
			color.Red("Error simulating day %d: %v", day, err)
			os.Exit(1)
		}
		dayReward := rewardBefore - totalReward(scenario.Sites)
		campaignReward += dayReward

		if !quiet {
			printDay(day, raids)
		}

		attacked := 0
		deployed := 0
		for _, raid := range raids {
			if raid.Attacked() {
				attacked++
				deployed += raid.Sent
			}
		}
		successColor.Printf("✓ Day %d: %d/%d teams raided, %d adventurers deployed, %.2f reward collected\n\n", day, attacked, teams, deployed, dayReward)
	}

	successColor.Printf("💰 Campaign total over %d days: %.2f reward\n", days, campaignReward)
	fmt.Println()
}

func printDay(day int, raids []models.Raid) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Printf("🎯 Day %d Dispatch\n", day)
	fmt.Println()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Team", "Target", "Sent"}),
	)
	for i, raid := range raids {
		target := "—"
		sent := "—"
		if raid.Attacked() {
			target = raid.Site.Name
			sent = fmt.Sprintf("%d", raid.Sent)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			target,
			sent,
		}
		_ = table.Append(row)
	}
	_ = table.Render()
	fmt.Println()
}

func totalReward(sites []*models.Site) float64 {
	total := 0.0
	for _, site := range sites {
		total += site.Reward
	}
	return total
}
