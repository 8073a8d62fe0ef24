package controller

import (
	"github.com/icarusiftctts/campus-bus-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError writes a uniform {"message": "<kind>"} body with the status
// carried by the AppError itself, so handlers never re-derive a status code
// from error text (spec.md §6: "Errors are uniformly {message: <kind>}").
func respondError(c *gin.Context, err error) {
	appErr := domain.AsAppError(err)
	c.JSON(appErr.Status, appErr)
}
