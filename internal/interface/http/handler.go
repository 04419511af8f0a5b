package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/calorie-advisor/internal/domain/calorie"
	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

const (
	temperatureUnavailableMessage = "temperature unavailable, try later"
	correctInputMessage           = "correct your input"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	calorieSvc calorie.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(calorieSvc calorie.Service, logger *slog.Logger) *Handler {
	return &Handler{
		calorieSvc: calorieSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// EstimateCalories returns the temperature adjusted daily intake.
func (h *Handler) EstimateCalories(c *gin.Context) {
	var req calorie.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.calorieSvc.Advise(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

type temperatureQuery struct {
	Country string `form:"country" binding:"required,min=3,max=20,place"`
	City    string `form:"city" binding:"required,min=3,max=20,place"`
}

// Temperature returns the current reading for a location.
func (h *Handler) Temperature(c *gin.Context) {
	var q temperatureQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	outcome, err := h.calorieSvc.ResolveTemperature(c.Request.Context(), q.Country, q.City)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}
	if reading, ok := outcome.Reading(); ok {
		c.JSON(http.StatusOK, reading)
		return
	}
	abortWithError(c, domainError(outcome.Err()))
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// domainError maps AppError codes to transport errors.
func domainError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.CodeComputation:
		return NewHTTPError(http.StatusUnprocessableEntity, code, correctInputMessage+": "+errMessage(err), err)
	case apperrors.CodeNetwork, apperrors.CodeMissingElement, apperrors.CodeParse:
		return NewHTTPError(http.StatusBadGateway, code, temperatureUnavailableMessage, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
