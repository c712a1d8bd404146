package handlers

import (
	"net/http"

	"solar-economics/internal/api/models"
	"solar-economics/internal/cashflow"
	"solar-economics/internal/tariff"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler runs the cashflow projection for one fixed system size.
type ProjectHandler struct {
	catalog *tariff.Catalog
	engine  *cashflow.Engine
}

func NewProjectHandler(catalog *tariff.Catalog) *ProjectHandler {
	if catalog == nil {
		catalog = tariff.DefaultCatalog()
	}
	return &ProjectHandler{catalog: catalog, engine: cashflow.New()}
}

// Project handles POST /api/v1/project
func (h *ProjectHandler) Project(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if req.Design.PVPowerKW <= 0 && req.Design.BatteryEnergyKWh <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DESIGN",
				Message: "design must include a pv_kw or battery_kwh size",
			},
		})
		return
	}

	site := resolveSite(req.Site, h.catalog)
	result := h.engine.Project(req.Design.ToModel(), site, req.Assumptions.ToModel(), req.Incentives.ToModel())

	c.JSON(http.StatusOK, models.ProjectResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Result: models.NewKPIRecord(result, req.Options.IncludeCashflows),
	})
}
