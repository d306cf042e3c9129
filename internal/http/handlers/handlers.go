package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/telco_churn/backend/internal/contract"
	"github.com/telco_churn/backend/internal/http/middleware"
	"github.com/telco_churn/backend/internal/models"
	"github.com/telco_churn/backend/internal/service"
)

type Handler struct {
	Contract     *contract.Contract
	Predictor    *service.Predictor
	Logger       zerolog.Logger
	MaxBodyBytes int64
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

type SchemaResponse struct {
	Fields []contract.Field `json:"fields"`
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Model: h.Predictor.Model.Name()})
}

// @Summary Input schema
// @Description Accepted customer fields with their value domains
// @Tags churn
// @Produce json
// @Success 200 {object} SchemaResponse
// @Router /schema [get]
func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, SchemaResponse{Fields: contract.Fields()})
}

// score runs raw input through the contract and the predictor. Both surfaces
// go through here.
func (h *Handler) score(c *gin.Context, raw map[string]any) (models.PredictionResult, error) {
	rid := c.GetString(middleware.RequestIDHeader)

	rec, err := h.Contract.Validate(raw)
	if err != nil {
		return models.PredictionResult{}, err
	}
	for _, issue := range contract.Inconsistencies(rec) {
		h.Logger.Warn().Str("request_id", rid).Str("issue", issue).Msg("inconsistent customer record")
	}

	res, err := h.Predictor.Predict(c.Request.Context(), rec)
	if err != nil {
		h.Logger.Error().Err(err).Str("request_id", rid).Msg("inference failed")
		return models.PredictionResult{}, err
	}
	return res, nil
}

func (h *Handler) limitBody(c *gin.Context) {
	if h.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)
	}
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Details: details}})
}
