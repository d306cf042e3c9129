package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telco_churn/backend/internal/contract"
	"github.com/telco_churn/backend/internal/service"
)

// @Summary Predict churn
// @Description Score one customer record
// @Tags churn
// @Accept json
// @Produce json
// @Param customer body models.CustomerRecord true "Customer attributes"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predict_churn [post]
func (h *Handler) PredictChurn(c *gin.Context) {
	h.limitBody(c)

	raw, err := decodeObject(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return
		}
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Body must be a JSON object", err.Error())
		return
	}

	res, err := h.score(c, raw)
	if err != nil {
		var verr *contract.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", verr.Errors)
		case errors.Is(err, service.ErrInference):
			writeError(c, http.StatusInternalServerError, "INFERENCE_FAILURE", "Model inference failed", err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Prediction failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

var errNotObject = errors.New("body is not a JSON object")

// decodeObject reads exactly one JSON object from body. Trailing data after
// the object is rejected.
func decodeObject(body io.Reader) (map[string]any, error) {
	if body == nil {
		return nil, errNotObject
	}
	dec := json.NewDecoder(body)
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotObject
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, errors.New("unexpected data after JSON object")
	}
	return raw, nil
}
