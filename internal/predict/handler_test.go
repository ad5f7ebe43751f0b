package predict

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diabetes-risk/internal/artifact"
	"diabetes-risk/internal/common/logger"
	"diabetes-risk/internal/survey"
)

// ==========================
// Test Helper Functions
// ==========================

// fixedBundle returns a bundle whose prediction is the given probability for
// any submission: all-zero coefficients and the matching logit as intercept.
func fixedBundle(p, threshold float64) *artifact.Bundle {
	features := survey.FeatureNames()
	return &artifact.Bundle{
		SchemaVersion: 1,
		Model: artifact.Model{
			Type:         artifact.ModelTypeLogisticRegression,
			Intercept:    math.Log(p / (1 - p)),
			Coefficients: make([]float64, len(features)),
		},
		Threshold: threshold,
		Features:  features,
	}
}

func newTestRouter(t *testing.T, bundle *artifact.Bundle) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewTestLogger(t)
	handler := NewHandler(NewService(bundle, log, nil), log)

	router := gin.New()
	router.SetHTMLTemplate(PageTemplate())
	router.GET("/", handler.ShowForm)
	router.POST("/", handler.SubmitForm)
	router.POST("/api/v1/predict", handler.Predict)
	router.GET("/api/v1/health", handler.Health)
	return router
}

func validFormValues() url.Values {
	return url.Values{
		"HighBP":               {"1"},
		"HighChol":             {"0"},
		"BMI":                  {"28"},
		"Stroke":               {"0"},
		"HeartDiseaseorAttack": {"0"},
		"PhysActivity":         {"1"},
		"HvyAlcoholConsump":    {"0"},
		"GenHlth":              {"2"},
		"DiffWalk":             {"0"},
		"Sex":                  {"0"},
		"Age":                  {"52"},
	}
}

func postForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validAPIBody() map[string]float64 {
	return map[string]float64{
		"HighBP": 1, "HighChol": 0, "BMI": 28, "Stroke": 0,
		"HeartDiseaseorAttack": 0, "PhysActivity": 1, "HvyAlcoholConsump": 0,
		"GenHlth": 2, "DiffWalk": 0, "Sex": 0, "Age": 52,
	}
}

func postJSON(router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ==========================
// Form Page Tests
// ==========================

func TestShowForm(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.5, 0.4))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Diabetes Risk Prediction")
	assert.NotContains(t, body, "result-box no")
	for _, q := range survey.Questions {
		assert.Contains(t, body, q.Label)
		assert.Contains(t, body, `name="`+q.Feature+`"`)
	}
}

func TestSubmitForm_Outcomes(t *testing.T) {
	tests := []struct {
		name           string
		probability    float64
		threshold      float64
		expectedClass  string
		expectedPhrase string
	}{
		{
			name:           "below threshold is not diabetic",
			probability:    0.25,
			threshold:      0.4,
			expectedClass:  "no",
			expectedPhrase: "Not Diabetic",
		},
		{
			name:           "medium band",
			probability:    0.45,
			threshold:      0.4,
			expectedClass:  "medium",
			expectedPhrase: "Medium Risk",
		},
		{
			name:           "high band",
			probability:    0.95,
			threshold:      0.4,
			expectedClass:  "high",
			expectedPhrase: "High Risk",
		},
		{
			name:           "low band",
			probability:    0.25,
			threshold:      0.2,
			expectedClass:  "low",
			expectedPhrase: "Low Risk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, fixedBundle(tt.probability, tt.threshold))

			w := postForm(router, validFormValues())

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, `result-box `+tt.expectedClass)
			assert.Contains(t, body, tt.expectedPhrase)
		})
	}
}

func TestSubmitForm_RejectsBadInput(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.5, 0.4))

	form := validFormValues()
	form.Set("BMI", "500")
	w := postForm(router, form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "result-box error")

	form = validFormValues()
	form.Del("Sex")
	w = postForm(router, form)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ==========================
// JSON API Tests
// ==========================

func TestPredictAPI_Success(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.45, 0.4))

	w := postJSON(router, validAPIBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.45, resp.Probability, 1e-9)
	assert.Equal(t, 0.4, resp.Threshold)
	assert.True(t, resp.Diabetic)
	assert.Equal(t, "Medium Risk", resp.RiskLevel)
	assert.Equal(t, "medium", resp.RiskClass)
}

func TestPredictAPI_NotDiabetic(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.25, 0.4))

	w := postJSON(router, validAPIBody())

	require.Equal(t, http.StatusOK, w.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Diabetic)
	assert.Empty(t, resp.RiskLevel)
	assert.Equal(t, "no", resp.RiskClass)
}

func TestPredictAPI_ZeroValuesAccepted(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.5, 0.4))

	body := validAPIBody()
	for k := range body {
		body[k] = 0
	}
	body["BMI"] = 10
	body["GenHlth"] = 1

	w := postJSON(router, body)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPredictAPI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]float64) interface{}
	}{
		{
			name: "missing feature",
			mutate: func(body map[string]float64) interface{} {
				delete(body, "Age")
				return body
			},
		},
		{
			name: "value out of range",
			mutate: func(body map[string]float64) interface{} {
				body["GenHlth"] = 9
				return body
			},
		},
		{
			name: "wrong type",
			mutate: func(body map[string]float64) interface{} {
				return map[string]interface{}{"HighBP": "yes"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, fixedBundle(0.5, 0.4))

			w := postJSON(router, tt.mutate(validAPIBody()))

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, fixedBundle(0.5, 0.4))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, float64(11), resp["feature_count"])
	assert.Equal(t, artifact.ModelTypeLogisticRegression, resp["model_type"])
}
