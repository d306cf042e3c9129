package handlers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telco_churn/backend/internal/contract"
	"github.com/telco_churn/backend/internal/models"
	"github.com/telco_churn/backend/internal/service"
)

const formTemplate = "form.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the HTML views served by the form surface.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type formField struct {
	contract.Field
	Value string
	Error string
}

type formPage struct {
	Fields []formField
	Result *models.PredictionResult
	Error  string
}

func newFormPage(values map[string]any, fieldErrs []contract.FieldError) formPage {
	byField := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		byField[fe.Field] = fe.Message
	}
	var page formPage
	for _, f := range contract.Fields() {
		v := f.Default
		if submitted, ok := values[f.Name]; ok {
			v = submitted
		}
		page.Fields = append(page.Fields, formField{Field: f, Value: fmt.Sprint(v), Error: byField[f.Name]})
	}
	return page
}

// @Summary Churn form
// @Tags form
// @Produce html
// @Success 200
// @Router / [get]
func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, newFormPage(nil, nil))
}

// @Summary Submit churn form
// @Tags form
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200
// @Failure 422
// @Failure 500
// @Router / [post]
func (h *Handler) SubmitForm(c *gin.Context) {
	h.limitBody(c)
	if err := c.Request.ParseForm(); err != nil {
		page := newFormPage(nil, nil)
		page.Error = "Could not read the submitted form."
		c.HTML(http.StatusBadRequest, formTemplate, page)
		return
	}

	raw := make(map[string]any, len(c.Request.PostForm))
	for k, vals := range c.Request.PostForm {
		if len(vals) > 0 {
			raw[k] = vals[0]
		}
	}

	res, err := h.score(c, raw)
	if err != nil {
		var verr *contract.ValidationError
		switch {
		case errors.As(err, &verr):
			page := newFormPage(raw, verr.Errors)
			page.Error = "Please correct the highlighted fields."
			c.HTML(http.StatusUnprocessableEntity, formTemplate, page)
		case errors.Is(err, service.ErrInference):
			page := newFormPage(raw, nil)
			page.Error = "The model could not score this customer. Please try again later."
			c.HTML(http.StatusInternalServerError, formTemplate, page)
		default:
			page := newFormPage(raw, nil)
			page.Error = "Prediction failed."
			c.HTML(http.StatusInternalServerError, formTemplate, page)
		}
		return
	}

	page := newFormPage(raw, nil)
	page.Result = &res
	c.HTML(http.StatusOK, formTemplate, page)
}
