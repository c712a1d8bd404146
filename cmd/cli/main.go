package main

import (
	"fmt"
	"os"
	"path/filepath"

	"solar-economics/internal/acquisition"
	"solar-economics/internal/cashflow"
	"solar-economics/internal/config"
	"solar-economics/internal/model"
	"solar-economics/internal/optimizer"
	"solar-economics/internal/tariff"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "cli",
		Short: "Solar project economics from the command line",
	}
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newCompareCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newEvaluateCmd() *cobra.Command {
	var scenarioPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the sizing optimizer for a scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := config.Load(scenarioPath)
			if err != nil {
				return err
			}

			catalog := tariff.DefaultCatalog()
			if scenario.TariffFile != "" {
				catalog, err = tariff.Load(scenario.TariffFile)
				if err != nil {
					return err
				}
			}

			site := scenario.Site.ToModel()
			if rate, ok := catalog.Lookup(site.TariffCode); ok {
				if site.EnergyRatePerKWh == 0 {
					site.EnergyRatePerKWh = rate.EnergyPerKWh
				}
				if site.DemandRatePerKWMonth == 0 {
					site.DemandRatePerKWMonth = rate.DemandPerKWMonth
				}
			}

			fin := scenario.Assumptions.ToModel()
			inc := scenario.Incentives.ToModel()

			opt := optimizer.New()
			result := opt.Run(scenario.Design.ToModel(), site, fin, inc,
				model.OptimizationTarget(scenario.Target),
				optimizer.Constraints{BudgetCeiling: scenario.BudgetCeiling})

			if result.Best == nil {
				return fmt.Errorf("no feasible candidate for scenario %s", scenarioPath)
			}
			best := result.Best

			fmt.Printf("Evaluated %d candidates (target %s)\n", len(result.Evaluated), result.Target)
			fmt.Printf("Winner: PV %.1f kW, battery %.1f kWh (coverage %.0f%%)\n",
				best.Design.PVPowerKW, best.Design.BatteryEnergyKWh, best.CoverageRatio*100)
			fmt.Printf("Capex gross $%.0f / net $%.0f, year-1 savings $%.0f\n",
				best.GrossCapex, best.NetCapex, best.Year1Savings)
			fmt.Printf("NPV 10/20/25y: $%.0f / $%.0f / $%.0f\n", best.NPV10, best.NPV20, best.NPV25)
			fmt.Printf("IRR 25y: %s  Payback: %s  LCOE: %.1f c/kWh  Self-sufficiency: %.1f%%\n",
				fmtRate(best.IRR25), fmtYear(best.PaybackYear), best.LCOECentsPerKWh, best.SelfSufficiencyPct)

			comparison := acquisition.Compare(acquisition.Inputs{
				Capex:        best.GrossCapex,
				Year1Savings: best.Year1Savings,
				Incentives:   best.Incentives,
				Assumptions:  fin,
			})
			printTrack(comparison.Cash)
			printTrack(comparison.Loan)
			printTrack(comparison.Lease)

			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				if err := cashflow.WriteLedgerCSV(outPath, best.Cashflows); err != nil {
					return err
				}
				fmt.Printf("Wrote %d cashflow rows to %s\n", len(best.Cashflows), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.yaml", "Path to scenario YAML")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional cashflow CSV output path")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var capex, savings, incSolar, incBattery, itc, shield float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare cash, loan, and lease for given headline figures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			comparison := acquisition.Compare(acquisition.Inputs{
				Capex:        capex,
				Year1Savings: savings,
				Incentives: model.IncentiveStack{
					UtilitySolar:   incSolar,
					UtilityBattery: incBattery,
					FederalITC:     itc,
					TaxShield:      shield,
				},
				Assumptions: model.DefaultAssumptions(),
			})
			printTrack(comparison.Cash)
			printTrack(comparison.Loan)
			printTrack(comparison.Lease)
			return nil
		},
	}

	cmd.Flags().Float64Var(&capex, "capex", 0, "Gross system cost ($)")
	cmd.Flags().Float64Var(&savings, "savings", 0, "Year-1 savings ($)")
	cmd.Flags().Float64Var(&incSolar, "incentive-solar", 0, "Utility solar incentive ($)")
	cmd.Flags().Float64Var(&incBattery, "incentive-battery", 0, "Utility battery incentive ($)")
	cmd.Flags().Float64Var(&itc, "federal-itc", 0, "Federal investment tax credit ($)")
	cmd.Flags().Float64Var(&shield, "tax-shield", 0, "Depreciation tax shield ($)")
	_ = cmd.MarkFlagRequired("capex")
	_ = cmd.MarkFlagRequired("savings")
	return cmd
}

func printTrack(s model.AcquisitionSeries) {
	fmt.Printf("%-5s  upfront $%.0f", s.Method, s.DownPayment)
	if s.AnnualPayment > 0 {
		fmt.Printf("  annual payment $%.0f on $%.0f", s.AnnualPayment, s.FinancedAmount)
	}
	fmt.Printf("  payback %s\n", fmtYear(s.PaybackYear))
}

func fmtRate(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *r*100)
}

func fmtYear(y *int) string {
	if y == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *y)
}
