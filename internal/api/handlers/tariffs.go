package handlers

import (
	"net/http"

	"solar-economics/internal/api/models"
	"solar-economics/internal/model"
	"solar-economics/internal/tariff"

	"github.com/gin-gonic/gin"
)

// TariffHandler exposes the rate catalog and the default assumption set so
// the dashboard can show (and let reps override) what an evaluation will use.
type TariffHandler struct {
	catalog *tariff.Catalog
}

func NewTariffHandler(catalog *tariff.Catalog) *TariffHandler {
	if catalog == nil {
		catalog = tariff.DefaultCatalog()
	}
	return &TariffHandler{catalog: catalog}
}

// ListTariffs handles GET /api/v1/tariffs
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	rates := h.catalog.All()
	tariffs := make([]models.TariffInfo, len(rates))
	for i, r := range rates {
		tariffs[i] = models.TariffInfo{
			Code:             r.Code,
			Name:             r.Name,
			EnergyPerKWh:     r.EnergyPerKWh,
			DemandPerKWMonth: r.DemandPerKWMonth,
		}
	}
	c.JSON(http.StatusOK, gin.H{"tariffs": tariffs})
}

// Defaults handles GET /api/v1/defaults
func (h *TariffHandler) Defaults(c *gin.Context) {
	d := model.DefaultAssumptions()
	c.JSON(http.StatusOK, gin.H{
		"assumptions": models.Assumptions{
			DiscountRate:                 d.DiscountRate,
			TariffInflationRate:          d.TariffInflationRate,
			TaxRate:                      d.TaxRate,
			PVCostPerKW:                  d.PVCostPerKW,
			BatteryCostPerKWh:            d.BatteryCostPerKWh,
			SolarOMRate:                  d.SolarOMRate,
			BatteryOMRate:                d.BatteryOMRate,
			OMEscalationRate:             d.OMEscalationRate,
			BatteryReplacementYear:       d.BatteryReplacementYear,
			BatteryReplacementCostFactor: d.BatteryReplacementCostFactor,
			BatteryPriceDeclineRate:      d.BatteryPriceDeclineRate,
			LoanInterestRate:             d.Loan.InterestRate,
			LoanTermYears:                d.Loan.TermYears,
			LoanDownPaymentPct:           d.Loan.DownPaymentPct,
			LeaseImplicitRate:            d.Lease.ImplicitRate,
			LeaseTermYears:               d.Lease.TermYears,
			DegradationRate:              d.DegradationRate,
			GridCO2KgPerKWh:              d.GridCO2KgPerKWh,
		},
		"horizon_years":        model.HorizonYears,
		"default_yield_kwh_kw": model.DefaultAnnualYieldKWhPerKW,
	})
}
