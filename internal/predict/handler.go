// internal/predict/handler.go
package predict

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"diabetes-risk/internal/common/errors"
	"diabetes-risk/internal/common/logger"
	"diabetes-risk/internal/common/metrics"
	"diabetes-risk/internal/survey"
)

const pageTitle = "Diabetes Risk Prediction"

// Handler serves the questionnaire page and the JSON inference API.
type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "predict"}),
	}
}

// ShowForm renders the empty questionnaire with widget defaults.
func (h *Handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", FormView{
		Title:     pageTitle,
		Questions: defaultQuestionViews(),
	})
}

// SubmitForm handles a form submission: build the record, score it, and
// re-render the page with the styled result box.
func (h *Handler) SubmitForm(c *gin.Context) {
	start := time.Now()
	defer func() {
		metrics.PredictionDuration.WithLabelValues("form").Observe(time.Since(start).Seconds())
	}()

	if err := c.Request.ParseForm(); err != nil {
		h.renderError(c, errors.NewInvalidSubmissionError(err.Error()))
		return
	}

	rec, err := survey.ParseForm(c.Request.PostForm)
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := h.service.Evaluate(c.Request.Context(), rec)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html.tmpl", FormView{
		Title:     pageTitle,
		Questions: questionViews(rec),
		Result:    &result,
	})
}

// Predict is the JSON inference endpoint.
func (h *Handler) Predict(c *gin.Context) {
	start := time.Now()
	defer func() {
		metrics.PredictionDuration.WithLabelValues("api").Observe(time.Since(start).Seconds())
	}()

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	rec, err := survey.FromMap(req.ToMap())
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.service.Evaluate(c.Request.Context(), rec)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Probability: result.Probability,
		Threshold:   result.Threshold,
		Diabetic:    result.Diabetic,
		RiskLevel:   string(result.Level),
		RiskClass:   result.CSSClass,
	})
}

// Health reports service status and loaded artifact info.
func (h *Handler) Health(c *gin.Context) {
	bundle := h.service.Bundle()
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"model_type":    bundle.Model.Type,
		"feature_count": len(bundle.Features),
		"threshold":     bundle.Threshold,
		"timestamp":     time.Now().UTC(),
	})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	stdErr := errors.Normalize(err)
	h.logger.WithError(err).Warn("form submission rejected", map[string]interface{}{
		"errorCode": stdErr.Code,
	})
	c.HTML(errors.HTTPStatus(err), "index.html.tmpl", FormView{
		Title:     pageTitle,
		Questions: defaultQuestionViews(),
		Error:     stdErr.Message,
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	stdErr := errors.Normalize(err)
	c.JSON(errors.HTTPStatus(err), ErrorResponse{
		Error:   stdErr.Message,
		Details: stdErr.Details,
	})
}

func defaultQuestionViews() []QuestionView {
	views := make([]QuestionView, len(survey.Questions))
	for i, q := range survey.Questions {
		views[i] = QuestionView{Question: q, Value: q.Default}
	}
	return views
}

func questionViews(rec survey.Record) []QuestionView {
	views := make([]QuestionView, len(survey.Questions))
	for i, q := range survey.Questions {
		views[i] = QuestionView{Question: q, Value: rec[q.Feature]}
	}
	return views
}
