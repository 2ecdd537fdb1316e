package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
	"github.com/oksasatya/fitness-gen-api/pkg/validation"
)

// writeError translates a service error into the response envelope. Every handler goes through it.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidIdentity):
		response.Error[any](c, http.StatusBadRequest, "invalid cpf", response.ErrorBody{Code: "invalid_identity", Field: "cpf"})
	case errors.Is(err, application.ErrLookupKeyRequired):
		response.Error[any](c, http.StatusBadRequest, err.Error(), response.ErrorBody{Code: "lookup_key_required"})
	case errors.Is(err, application.ErrNoEmail):
		response.Error[any](c, http.StatusBadRequest, err.Error(), response.ErrorBody{Code: "no_email", Field: "email"})
	case errors.Is(err, application.ErrEmptyUpload):
		response.Error[any](c, http.StatusBadRequest, err.Error(), response.ErrorBody{Code: "empty_upload", Field: "file"})
	case errors.Is(err, errs.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", response.ErrorBody{Code: "not_found"})
	case errors.Is(err, errs.ErrUniqueViolation):
		field := errs.FieldOf(err)
		msg := "duplicate value"
		if field != "" {
			msg = field + " already registered"
		}
		response.Error[any](c, http.StatusConflict, msg, response.ErrorBody{Code: "unique_violation", Field: field})
	case errors.Is(err, errs.ErrForeignKeyViolation):
		response.Error[any](c, http.StatusBadRequest, "invalid reference", response.ErrorBody{Code: "foreign_key_violation", Field: errs.FieldOf(err)})
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", response.ErrorBody{Code: "invalid_credentials"})
	case errors.Is(err, application.ErrStorageNotConfigured):
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), response.ErrorBody{Code: "storage_unavailable"})
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"path":       c.FullPath(),
				"method":     c.Request.Method,
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal error", response.ErrorBody{Code: "internal"})
	}
}

// writeBindError answers 400 with per-field details.
func writeBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", response.ErrorBody{
		Code:    "validation",
		Details: validation.ToDetails(err),
	})
}

func writeFieldError(c *gin.Context, field, message string) {
	writeBindError(c, &validation.FieldError{Field: field, Message: message})
}
