package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"ztrack_backend/internal/apperror"
	"ztrack_backend/internal/dto"
)

func init() {
	// Report violations under the JSON field names clients actually sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, dto.Response{Data: data, Code: http.StatusOK, Message: message})
}

// respondError translates the application error taxonomy into HTTP statuses.
// Anything outside the taxonomy becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		tag := "internal_error"
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusUnprocessableEntity
			tag = "validation_error"
		case errors.Is(err, apperror.ErrInvalidID):
			status = http.StatusBadRequest
			tag = "invalid_id"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			tag = "not_found"
		case errors.Is(err, apperror.ErrStudentMissing):
			status = http.StatusNotFound
			tag = "student_not_found"
		case errors.Is(err, apperror.ErrDuplicate):
			status = http.StatusConflict
			tag = "duplicate_field"
		}

		var payload interface{} = tag
		if status == http.StatusUnprocessableEntity && appErr.Field != "" {
			payload = []dto.FieldError{{Field: appErr.Field, Message: appErr.Message}}
		}
		c.JSON(status, dto.ErrorResponse{Error: payload, Code: status, Message: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Code:    http.StatusInternalServerError,
		Message: "an unexpected error occurred",
	})
}

// respondBindError turns a request-body binding failure into either a 422
// with the full per-field violation list, or a 400 for unparseable JSON.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   fields,
			Code:    http.StatusUnprocessableEntity,
			Message: "validation failed",
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "bad_request",
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return "is invalid"
	}
}
