package domain

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// GetPassengerIDFromContext extracts the passengerId set by middleware.PassengerAuth.
func GetPassengerIDFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("passengerId")
	if !exists {
		return "", fmt.Errorf("passengerId not found in context")
	}
	id, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("passengerId has invalid type: %T", value)
	}
	return id, nil
}

// GetOperatorIDFromContext extracts the operatorId set by middleware.OperatorAuth.
func GetOperatorIDFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("operatorId")
	if !exists {
		return "", fmt.Errorf("operatorId not found in context")
	}
	id, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("operatorId has invalid type: %T", value)
	}
	return id, nil
}
