package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelplanner/internal/form"
	"travelplanner/pkg/utils"
)

// FormController serves the HTML itinerary form. Each POST gets a fresh
// form.Form, so page state never leaks between visitors.
type FormController struct {
	client form.Client
	log    *zap.Logger
}

func NewFormController(client form.Client, log *zap.Logger) *FormController {
	return &FormController{client: client, log: log}
}

// ShowFormHandler godoc
// @Summary Itinerary form page
// @Tags Form
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (fc *FormController) ShowFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, form.PageTemplateName, form.NewPageData(form.State{Values: form.DefaultValues()}))
}

// SubmitFormHandler godoc
// @Summary Submit the itinerary form
// @Description Validates the form, generates the itinerary and renders it into the page
// @Tags Form
// @Accept x-www-form-urlencoded
// @Produce html
// @Param place formData string true "Destination"
// @Param days formData int true "Number of days"
// @Success 200 {string} string "HTML page with the itinerary or the error panel"
// @Failure 422 {string} string "HTML page with field errors"
// @Router / [post]
func (fc *FormController) SubmitFormHandler(c *gin.Context) {
	f := form.New(fc.client, fc.log.With(zap.String(utils.TraceIDKey, utils.TraceID(c))))

	status := http.StatusOK
	err := f.Submit(c.Request.Context(), c.PostForm("place"), c.PostForm("days"))
	var fieldErrs form.FieldErrors
	if errors.As(err, &fieldErrs) {
		status = http.StatusUnprocessableEntity
	}

	c.HTML(status, form.PageTemplateName, form.NewPageData(f.State()))
}
