package handlers

import (
	"net/http"

	"solar-economics/internal/acquisition"
	"solar-economics/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompareHandler builds the cash/loan/lease comparison from a chosen
// scenario's headline figures.
type CompareHandler struct{}

func NewCompareHandler() *CompareHandler { return &CompareHandler{} }

// Compare handles POST /api/v1/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := acquisition.Compare(acquisition.Inputs{
		Capex:        req.Capex,
		Year1Savings: req.Year1Savings,
		Incentives:   req.Incentives.ToModel(),
		Assumptions:  req.Assumptions.ToModel(),
	})

	c.JSON(http.StatusOK, models.CompareResponse{
		ID:          uuid.NewString(),
		Status:      "completed",
		Acquisition: models.NewAcquisitionSet(comparison),
	})
}
