// internal/predict/service.go
package predict

import (
	"context"
	"fmt"
	"time"

	"diabetes-risk/internal/artifact"
	"diabetes-risk/internal/common/errors"
	"diabetes-risk/internal/common/logger"
	"diabetes-risk/internal/common/metrics"
	"diabetes-risk/internal/common/observability"
	"diabetes-risk/internal/risk"
	"diabetes-risk/internal/survey"
)

// Service runs one submission through the cached classifier bundle and the
// risk classification rule.
type Service struct {
	bundle *artifact.Bundle
	logger logger.Logger
	obs    *observability.Observability
}

func NewService(bundle *artifact.Bundle, log logger.Logger, obs *observability.Observability) *Service {
	return &Service{
		bundle: bundle,
		logger: log,
		obs:    obs,
	}
}

// Bundle exposes the read-only cached artifact.
func (s *Service) Bundle() *artifact.Bundle {
	return s.bundle
}

// Evaluate scores a feature record and buckets the probability. The record is
// discarded after the call; nothing is persisted.
func (s *Service) Evaluate(ctx context.Context, rec survey.Record) (risk.Result, error) {
	start := time.Now()

	p, err := s.bundle.Predict(rec)
	if err != nil {
		stdErr := errors.Normalize(err)
		metrics.PredictionErrors.WithLabelValues(
			string(stdErr.Code), errors.GetErrorCategory(stdErr.Code),
		).Inc()
		s.logger.WithError(err).Error("prediction failed", map[string]interface{}{
			"errorCode": stdErr.Code,
			"category":  errors.GetErrorCategory(stdErr.Code),
		})
		return risk.Result{}, err
	}

	result := risk.Classify(p, s.bundle.Threshold)

	outcome := "not_diabetic"
	level := "none"
	if result.Diabetic {
		outcome = "diabetic"
		level = string(result.Level)
	}
	metrics.PredictionsTotal.WithLabelValues(outcome, level).Inc()
	if s.obs != nil {
		s.obs.RecordPrediction(ctx, outcome)
		s.obs.RecordPredictionDuration(ctx, time.Since(start), outcome)
	}

	s.logger.Info("prediction complete", map[string]interface{}{
		"probability": fmt.Sprintf("%.4f", p),
		"threshold":   s.bundle.Threshold,
		"outcome":     outcome,
		"riskLevel":   level,
		"durationMs":  time.Since(start).Milliseconds(),
	})

	return result, nil
}
