package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"
	"github.com/icarusiftctts/campus-bus-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportController exposes EVID.
type ReportController struct {
	reports service.ReportService
}

func NewReportController(reports service.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (ctrl *ReportController) SubmitReport(c *gin.Context) {
	operatorID, err := domain.GetOperatorIDFromContext(c)
	if err != nil {
		respondError(c, domain.ErrMissingCredentials)
		return
	}

	var req domain.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrMalformedRequest)
		return
	}

	resp, err := ctrl.reports.SubmitReport(c.Request.Context(), operatorID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, resp)
}
