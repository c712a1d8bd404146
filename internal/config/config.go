package config

import (
	"errors"
	"fmt"
	"os"

	"solar-economics/internal/model"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk evaluation configuration shape (YAML). Assumption
// fields left at zero fall back to the documented defaults; only non-zero
// values override.
type Scenario struct {
	Site        SiteConfig        `yaml:"site"`
	Design      DesignConfig      `yaml:"design"`
	Assumptions AssumptionsConfig `yaml:"assumptions"`
	Incentives  IncentivesConfig  `yaml:"incentives"`

	Target        string  `yaml:"target"`         // bestNPV | bestIRR | bestSelfSufficiency
	BudgetCeiling float64 `yaml:"budget_ceiling"` // $ gross capex limit, 0 = none

	// Optional path to a tariff table; the built-in catalog is used otherwise.
	TariffFile string `yaml:"tariff_file"`
}

type SiteConfig struct {
	AnnualConsumptionKWh float64 `yaml:"annual_consumption_kwh"`
	PeakDemandKW         float64 `yaml:"peak_demand_kw"`
	TariffCode           string  `yaml:"tariff_code"`
	EnergyRatePerKWh     float64 `yaml:"energy_rate_per_kwh"`
	DemandRatePerKWMonth float64 `yaml:"demand_rate_per_kw_month"`
	AnnualYieldKWhPerKW  float64 `yaml:"annual_yield_kwh_per_kw"`
	RoofAreaM2           float64 `yaml:"roof_area_m2"`
}

type DesignConfig struct {
	PVPowerKW        float64 `yaml:"pv_power_kw"` // fixed-size projection only; the optimizer searches it
	BatteryEnergyKWh float64 `yaml:"battery_energy_kwh"`
	BatteryPowerKW   float64 `yaml:"battery_power_kw"`
	DemandShaveKW    float64 `yaml:"demand_shave_kw"`
}

type AssumptionsConfig struct {
	DiscountRate        float64 `yaml:"discount_rate"`
	TariffInflationRate float64 `yaml:"tariff_inflation_rate"`
	TaxRate             float64 `yaml:"tax_rate"`

	PVCostPerKW       float64 `yaml:"pv_cost_per_kw"`
	BatteryCostPerKWh float64 `yaml:"battery_cost_per_kwh"`

	SolarOMRate      float64 `yaml:"solar_om_rate"`
	BatteryOMRate    float64 `yaml:"battery_om_rate"`
	OMEscalationRate float64 `yaml:"om_escalation_rate"`

	BatteryReplacementYear       int     `yaml:"battery_replacement_year"`
	BatteryReplacementCostFactor float64 `yaml:"battery_replacement_cost_factor"`
	BatteryPriceDeclineRate      float64 `yaml:"battery_price_decline_rate"`

	LoanInterestRate   float64 `yaml:"loan_interest_rate"`
	LoanTermYears      int     `yaml:"loan_term_years"`
	LoanDownPaymentPct float64 `yaml:"loan_down_payment_pct"`

	LeaseImplicitRate float64 `yaml:"lease_implicit_rate"`
	LeaseTermYears    int     `yaml:"lease_term_years"`

	DegradationRate float64 `yaml:"degradation_rate"`
	GridCO2KgPerKWh float64 `yaml:"grid_co2_kg_per_kwh"`
}

type IncentivesConfig struct {
	UtilitySolar   float64 `yaml:"utility_solar"`
	UtilityBattery float64 `yaml:"utility_battery"`
	FederalITC     float64 `yaml:"federal_itc"`
	TaxShield      float64 `yaml:"tax_shield"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadUnchecked loads a scenario without validating it. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	if s.Site.AnnualConsumptionKWh <= 0 {
		return errors.New("site.annual_consumption_kwh must be > 0")
	}
	if s.Target != "" && !model.OptimizationTarget(s.Target).Valid() {
		return fmt.Errorf("unknown target %q", s.Target)
	}
	return nil
}

func (s SiteConfig) ToModel() model.SiteEnergyProfile {
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

func (d DesignConfig) ToModel() model.SystemDesign {
	return model.SystemDesign{
		PVPowerKW:        d.PVPowerKW,
		BatteryEnergyKWh: d.BatteryEnergyKWh,
		BatteryPowerKW:   d.BatteryPowerKW,
		DemandShaveKW:    d.DemandShaveKW,
	}
}

// ToModel overlays the configured non-zero assumption fields onto the
// documented defaults.
func (a AssumptionsConfig) ToModel() model.FinancialAssumptions {
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

func (i IncentivesConfig) ToModel() model.IncentiveStack {
	return model.IncentiveStack{
		UtilitySolar:   i.UtilitySolar,
		UtilityBattery: i.UtilityBattery,
		FederalITC:     i.FederalITC,
		TaxShield:      i.TaxShield,
	}
}
