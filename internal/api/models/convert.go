package models

import (
	"math"

	"solar-economics/internal/model"
)

// Domain conversions for requests and responses. All monetary rounding to
// the cent happens here, at the output boundary, never inside the engine.

func (s SiteProfile) ToModel() model.SiteEnergyProfile {
	return model.SiteEnergyProfile{
		AnnualConsumptionKWh: s.AnnualConsumptionKWh,
		PeakDemandKW:         s.PeakDemandKW,
		TariffCode:           s.TariffCode,
		EnergyRatePerKWh:     s.EnergyRatePerKWh,
		DemandRatePerKWMonth: s.DemandRatePerKWMonth,
		AnnualYieldKWhPerKW:  s.AnnualYieldKWhPerKW,
		RoofAreaM2:           s.RoofAreaM2,
	}
}

func (d SystemDesign) ToModel() model.SystemDesign {
	return model.SystemDesign{
		PVPowerKW:        d.PVPowerKW,
		BatteryEnergyKWh: d.BatteryEnergyKWh,
		BatteryPowerKW:   d.BatteryPowerKW,
		DemandShaveKW:    d.DemandShaveKW,
	}
}

// ToModel overlays the request's non-zero fields onto the documented
// defaults.
func (a Assumptions) ToModel() model.FinancialAssumptions {
	override := model.FinancialAssumptions{
		DiscountRate:                 a.DiscountRate,
		TariffInflationRate:          a.TariffInflationRate,
		TaxRate:                      a.TaxRate,
		PVCostPerKW:                  a.PVCostPerKW,
		BatteryCostPerKWh:            a.BatteryCostPerKWh,
		SolarOMRate:                  a.SolarOMRate,
		BatteryOMRate:                a.BatteryOMRate,
		OMEscalationRate:             a.OMEscalationRate,
		BatteryReplacementYear:       a.BatteryReplacementYear,
		BatteryReplacementCostFactor: a.BatteryReplacementCostFactor,
		BatteryPriceDeclineRate:      a.BatteryPriceDeclineRate,
		Loan: model.LoanTerms{
			InterestRate:   a.LoanInterestRate,
			TermYears:      a.LoanTermYears,
			DownPaymentPct: a.LoanDownPaymentPct,
		},
		Lease: model.LeaseTerms{
			ImplicitRate: a.LeaseImplicitRate,
			TermYears:    a.LeaseTermYears,
		},
		DegradationRate: a.DegradationRate,
		GridCO2KgPerKWh: a.GridCO2KgPerKWh,
	}
	return model.DefaultAssumptions().Merge(override)
}

func (i Incentives) ToModel() model.IncentiveStack {
	return model.IncentiveStack{
		UtilitySolar:   i.UtilitySolar,
		UtilityBattery: i.UtilityBattery,
		FederalITC:     i.FederalITC,
		TaxShield:      i.TaxShield,
	}
}

// NewKPIRecord flattens a scenario result into the stable KPI record.
func NewKPIRecord(r *model.ScenarioResult, includeCashflows bool) KPIRecord {
	rec := KPIRecord{
		PVKW:          r.Design.PVPowerKW,
		BatteryKWh:    r.Design.BatteryEnergyKWh,
		BatteryKW:     r.Design.BatteryPowerKW,
		CoverageRatio: round4(r.CoverageRatio),

		GrossCapex: round2(r.GrossCapex),
		NetCapex:   round2(r.NetCapex),

		IncentiveSolar:   round2(r.Incentives.UtilitySolar),
		IncentiveBattery: round2(r.Incentives.UtilityBattery),
		FederalITC:       round2(r.Incentives.FederalITC),
		TaxShield:        round2(r.Incentives.TaxShield),

		Year1Savings: round2(r.Year1Savings),

		NPV10: round2(r.NPV10),
		NPV20: round2(r.NPV20),
		NPV25: round2(r.NPV25),

		IRR10: roundRate(r.IRR10),
		IRR20: roundRate(r.IRR20),
		IRR25: roundRate(r.IRR25),

		PaybackYear: r.PaybackYear,

		LCOECentsPerKWh:     round2(r.LCOECentsPerKWh),
		SelfSufficiencyPct:  round2(r.SelfSufficiencyPct),
		CO2AvoidedKgPerYear: round2(r.CO2AvoidedKgPerYear),
	}
	if includeCashflows {
		rec.Cashflows = make([]CashflowRow, len(r.Cashflows))
		for i, en := range r.Cashflows {
			rec.Cashflows[i] = CashflowRow{
				Year:        en.Year,
				Savings:     round2(en.Savings),
				Opex:        round2(en.Opex),
				Incentives:  round2(en.Incentives),
				Investment:  round2(en.Investment),
				NetCashflow: round2(en.NetCashflow),
				Cumulative:  round2(en.Cumulative),
			}
		}
	}
	return rec
}

// NewCandidateSummary maps a candidate to its sensitivity-chart row.
func NewCandidateSummary(r *model.ScenarioResult) CandidateSummary {
	return CandidateSummary{
		PVKW:               r.Design.PVPowerKW,
		CoverageRatio:      round4(r.CoverageRatio),
		GrossCapex:         round2(r.GrossCapex),
		NetCapex:           round2(r.NetCapex),
		NPV25:              round2(r.NPV25),
		IRR25:              roundRate(r.IRR25),
		SelfSufficiencyPct: round2(r.SelfSufficiencyPct),
		PaybackYear:        r.PaybackYear,
	}
}

// NewAcquisitionSet maps the three comparison tracks.
func NewAcquisitionSet(c model.AcquisitionComparison) AcquisitionSet {
	return AcquisitionSet{
		Cash:  newTrack(c.Cash),
		Loan:  newTrack(c.Loan),
		Lease: newTrack(c.Lease),
	}
}

func newTrack(s model.AcquisitionSeries) AcquisitionTrack {
	cumulative := make([]float64, len(s.Cumulative))
	for i, v := range s.Cumulative {
		cumulative[i] = round2(v)
	}
	return AcquisitionTrack{
		Method:         string(s.Method),
		DownPayment:    round2(s.DownPayment),
		FinancedAmount: round2(s.FinancedAmount),
		AnnualPayment:  round2(s.AnnualPayment),
		Cumulative:     cumulative,
		PaybackYear:    s.PaybackYear,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func roundRate(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := math.Round(*r*1e6) / 1e6
	return &v
}
