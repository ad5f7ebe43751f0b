// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of classifier predictions by outcome and risk level",
		},
		[]string{"outcome", "risk_level"},
	)

	PredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_errors_total",
			Help: "Total number of failed prediction requests by error code and category",
		},
		[]string{"error_code", "category"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "prediction_duration_seconds",
			Help: "Duration of prediction request handling in seconds",
		},
		[]string{"endpoint"},
	)

	ArtifactInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "model_artifact_info",
			Help: "Static info about the loaded model artifact, value is the decision threshold",
		},
		[]string{"model_type", "feature_count"},
	)
)
