package main

import (
	"flag"
	"fmt"

	"solar-economics/internal/acquisition"
	"solar-economics/internal/config"
	"solar-economics/internal/model"
	"solar-economics/internal/optimizer"
)

// Demo:
// - Build a representative commercial site and incentive stack
// - Run the sizing optimizer and print the candidate table
// - Compare cash/loan/lease for the winner
func main() {
	cfgPath := flag.String("config", "", "Path to scenario YAML (optional)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	site := model.SiteEnergyProfile{
		AnnualConsumptionKWh: 420000,
		PeakDemandKW:         180,
		TariffCode:           "GS-M",
		EnergyRatePerKWh:     0.105,
		DemandRatePerKWMonth: 12.50,
		AnnualYieldKWhPerKW:  1180,
		RoofAreaM2:           2400,
	}
	design := model.SystemDesign{
		BatteryEnergyKWh: 120,
		BatteryPowerKW:   60,
		DemandShaveKW:    40,
	}
	fin := model.DefaultAssumptions()
	inc := model.IncentiveStack{
		UtilitySolar:   40000,
		UtilityBattery: 18000,
		FederalITC:     30000,
		TaxShield:      15000,
	}
	target := model.TargetBestNPV

	if *cfgPath != "" {
		scenario, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		site = scenario.Site.ToModel()
		design = scenario.Design.ToModel()
		fin = scenario.Assumptions.ToModel()
		inc = scenario.Incentives.ToModel()
		if scenario.Target != "" {
			target = model.OptimizationTarget(scenario.Target)
		}
	}

	opt := optimizer.New()
	result := opt.Run(design, site, fin, inc, target, optimizer.Constraints{})

	fmt.Printf("%-10s %-10s %-12s %-12s %-10s\n", "pv_kw", "coverage", "net_capex", "npv_25y", "payback")
	for _, r := range result.Evaluated {
		payback := "never"
		if r.PaybackYear != nil {
			payback = fmt.Sprintf("%d", *r.PaybackYear)
		}
		fmt.Printf("%-10.1f %-10.2f %-12.0f %-12.0f %-10s\n",
			r.Design.PVPowerKW, r.CoverageRatio, r.NetCapex, r.NPV25, payback)
	}

	best := result.Best
	if best == nil {
		fmt.Println("no feasible candidate")
		return
	}
	fmt.Printf("\nWinner: %.1f kW PV (NPV25 $%.0f)\n", best.Design.PVPowerKW, best.NPV25)

	comparison := acquisition.Compare(acquisition.Inputs{
		Capex:        best.GrossCapex,
		Year1Savings: best.Year1Savings,
		Incentives:   best.Incentives,
		Assumptions:  fin,
	})
	for _, track := range []model.AcquisitionSeries{comparison.Cash, comparison.Loan, comparison.Lease} {
		payback := "never"
		if track.PaybackYear != nil {
			payback = fmt.Sprintf("year %d", *track.PaybackYear)
		}
		fmt.Printf("%-5s upfront $%-9.0f annual $%-8.0f payback %s\n",
			track.Method, track.DownPayment, track.AnnualPayment, payback)
	}
}
