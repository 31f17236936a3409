// Package controllers translates HTTP requests into service calls. Binding
// failures answer 400 with the uniform error body; everything else routes
// through middleware.HandleAPIError.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/alumlink/alumlink/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// bindJSON binds and validates the request body. On failure it writes the
// 400 response itself and returns false.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindErrorMessage(err)})
		return false
	}
	return true
}

// bindErrorMessage flattens a binding error into one readable line. Field
// validation failures report the first offending field.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return formatFieldError(verrs[0])
	}
	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " failed " + e.Tag() + " validation"
	}
}
