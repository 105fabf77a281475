package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel-inventory/services"
	"hotel-inventory/utils"

	"github.com/gin-gonic/gin"
)

func isDuplicateKeyError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// respondServiceError maps domain errors onto HTTP statuses: business-rule
// violations are 422, missing resources 404, ownership failures 403, unique
// key collisions 409 and anything else a logged 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserHasHotels):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case services.IsValidationError(err):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	case isDuplicateKeyError(err):
		utils.JSONError(c, http.StatusConflict, "a record with these unique values already exists")
	default:
		log.Printf("❌ unexpected service error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
