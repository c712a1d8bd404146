package handlers

import (
	"net/http"

	"solar-economics/internal/acquisition"
	"solar-economics/internal/api/models"
	"solar-economics/internal/model"
	"solar-economics/internal/optimizer"
	"solar-economics/internal/tariff"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EvaluateHandler runs the sizing optimizer plus the acquisition comparison
// for the winning candidate.
type EvaluateHandler struct {
	catalog *tariff.Catalog
}

func NewEvaluateHandler(catalog *tariff.Catalog) *EvaluateHandler {
	if catalog == nil {
		catalog = tariff.DefaultCatalog()
	}
	return &EvaluateHandler{catalog: catalog}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	target := model.OptimizationTarget(req.Target)
	if req.Target != "" && !target.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TARGET",
				Message: "target must be one of bestNPV, bestIRR, bestSelfSufficiency",
			},
		})
		return
	}

	site := resolveSite(req.Site, h.catalog)
	fin := req.Assumptions.ToModel()
	inc := req.Incentives.ToModel()

	opt := optimizer.New()
	result := opt.Run(req.Design.ToModel(), site, fin, inc, target, optimizer.Constraints{
		RoofAreaM2:    req.Constraints.RoofAreaM2,
		BudgetCeiling: req.Constraints.BudgetCeiling,
	})

	if result.Best == nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_FEASIBLE_CANDIDATE",
				Message: "no candidate system satisfies the given constraints",
			},
		})
		return
	}

	resp := models.EvaluateResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Target: string(result.Target),
	}

	winner := models.NewKPIRecord(result.Best, req.Options.IncludeCashflows)
	resp.Winner = &winner

	if req.Options.IncludeCandidates {
		resp.Candidates = make([]models.CandidateSummary, len(result.Evaluated))
		for i, r := range result.Evaluated {
			resp.Candidates[i] = models.NewCandidateSummary(r)
		}
	}

	comparison := acquisition.Compare(acquisition.Inputs{
		Capex:        result.Best.GrossCapex,
		Year1Savings: result.Best.Year1Savings,
		Incentives:   result.Best.Incentives,
		Assumptions:  fin,
	})
	set := models.NewAcquisitionSet(comparison)
	resp.Acquisition = &set

	c.JSON(http.StatusOK, resp)
}

// resolveSite fills missing energy/demand rates from the tariff catalog when
// the request names a tariff code. Explicit rates in the request win.
func resolveSite(site models.SiteProfile, catalog *tariff.Catalog) model.SiteEnergyProfile {
	out := site.ToModel()
	if out.TariffCode == "" {
		return out
	}
	rate, ok := catalog.Lookup(out.TariffCode)
	if !ok {
		return out
	}
	if out.EnergyRatePerKWh == 0 {
		out.EnergyRatePerKWh = rate.EnergyPerKWh
	}
	if out.DemandRatePerKWMonth == 0 {
		out.DemandRatePerKWMonth = rate.DemandPerKWMonth
	}
	return out
}
