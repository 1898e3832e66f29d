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
	scenarioPath string
	budgetFlag   int
	probe        bool
	quiet        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "expedition",
		Short: "Expedition Site Selection Planner",
		Long: `A greedy planner that raids sites in ascending guard/reward
ratio order until the adventurer budget runs out.`,
		Run: runPlanner,
	}

	rootCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "examples/frontier.yaml", "Path to scenario YAML file")
	rootCmd.Flags().IntVarP(&budgetFlag, "budget", "b", -1, "Override the scenario adventurer budget")
	rootCmd.Flags().BoolVarP(&probe, "probe", "p", false, "Evaluate the scenario probe budgets")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlanner(cmd *cobra.Command, args []string) {
	// Colors
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Expedition Planner       │")
		titleColor.Println("│  Ratio-Greedy Selection   │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	// Load scenario
	scenario, err := loader.LoadScenario(scenarioPath)
	if err != nil {
		color.Red("Error loading scenario: %v", err)
		os.Exit(1)
	}

	budget := scenario.Budget
	if budgetFlag >= 0 {
		budget = budgetFlag
	}

	if !quiet {
		infoColor.Printf("📦 Loaded %d sites, budget %d adventurers\n\n", len(scenario.Sites), budget)
	}

	nav, err := navigator.NewMode1Navigator(scenario.Sites, budget)
	if err != nil {
		color.Red("Error building navigator: %v", err)
		os.Exit(1)
	}

	printPlan(nav.SelectSites(), budget)

	if probe {
		if len(scenario.ProbeBudgets) == 0 {
			color.Red("Error: scenario has no probe_budgets to evaluate")
			os.Exit(1)
		}
		totals, err := nav.SelectSitesFromAdventureNumbers(scenario.ProbeBudgets)
		if err != nil {
			color.Red("Error probing budgets: %v", err)
			os.Exit(1)
		}
		printProbe(scenario.ProbeBudgets, totals)
	}
}

func printPlan(visits []models.Visit, budget int) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)

	titleColor.Println("🎯 Expedition Plan")
	fmt.Println()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Site", "Guards", "Reward", "Ratio", "Sent", "Reward Obtained"}),
	)

	totalSent := 0
	totalReward := 0.0
	for i, visit := range visits {
		totalSent += visit.Sent
		totalReward += visit.RewardObtained()

		row := []string{
			fmt.Sprintf("%d", i+1),
			visit.Site.Name,
			fmt.Sprintf("%d", visit.Site.GuardCost),
			fmt.Sprintf("%.1f", visit.Site.Reward),
			fmt.Sprintf("%.4f", visit.Site.InvasionRatio()),
			fmt.Sprintf("%d", visit.Sent),
			fmt.Sprintf("%.2f", visit.RewardObtained()),
		}
		_ = table.Append(row)
	}
	_ = table.Render()

	fmt.Println()
	successColor.Printf("✓ %d sites visited, %d/%d adventurers deployed\n", len(visits), totalSent, budget)
	successColor.Printf("💰 Total reward: %.2f\n", totalReward)
	fmt.Println()
}

func printProbe(budgets []int, totals []float64) {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Println("🔍 Budget Probe")
	fmt.Println()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Budget", "Total Reward"}),
	)
	for i, budget := range budgets {
		row := []string{
			fmt.Sprintf("%d", budget),
			fmt.Sprintf("%.2f", totals[i]),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
	fmt.Println()
}
