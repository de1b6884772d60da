// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// Error codes returned with 409 responses
const (
	CodeEmptyCart       = "empty_cart"
	CodeStepOutOfOrder  = "step_out_of_order"
	CodeNoDesign        = "no_design"
	CodeSessionNotFound = "session_not_found"
)

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"message": message,
		"data":    data,
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": bindDetails(err),
	})
}

// respondError maps a domain error to its HTTP status. Anything unmapped
// is logged and reported as a 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var (
		invalidOption  *studio.InvalidOptionError
		invalidProduct *studio.InvalidProductError
		missingField   *checkout.MissingFieldError
		validation     validator.ValidationErrors
	)

	switch {
	case errors.As(err, &invalidOption):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid option",
			"details": gin.H{
				"kind":   invalidOption.Kind,
				"value":  invalidOption.Value,
				"reason": invalidOption.Reason,
			},
		})
	case errors.As(err, &invalidProduct), errors.Is(err, studio.ErrNotCustomizable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Product cannot be customized",
			"details": err.Error(),
		})
	case errors.As(err, &missingField):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": gin.H{missingField.Field: "required"},
		})
	case errors.As(err, &validation):
		respondBindError(c, validation)
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, session.ErrUnknownPage), errors.Is(err, checkout.ErrUnknownShippingMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		conflict(c, CodeEmptyCart, "Your bag is empty")
	case errors.Is(err, checkout.ErrStepOutOfOrder):
		conflict(c, CodeStepOutOfOrder, err.Error())
	case errors.Is(err, session.ErrNoDesign):
		conflict(c, CodeNoDesign, "No design in progress")
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session expired",
			"code":  CodeSessionNotFound,
		})
	default:
		logger.WithFields(logrus.Fields{
			"session_id": middleware.SessionIDFromContext(c),
			"path":       c.FullPath(),
		}).WithError(err).Error("Request failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func conflict(c *gin.Context, code, message string) {
	c.JSON(http.StatusConflict, gin.H{
		"error": message,
		"code":  code,
	})
}

func bindDetails(err error) interface{} {
	var validation validator.ValidationErrors
	if !errors.As(err, &validation) {
		return err.Error()
	}

	fields := make(map[string]string, len(validation))
	for _, fe := range validation {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
