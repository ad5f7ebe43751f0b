// Package artifact loads the serialized classifier bundle and runs inference.
// The bundle is loaded once at startup and cached read-only for the process
// lifetime; it carries the classifier, the decision threshold, and the ordered
// feature-name list the classifier was trained on.
package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"diabetes-risk/internal/common/errors"
	"diabetes-risk/internal/survey"
)

// ModelTypeLogisticRegression is the only classifier kind the bundle format carries.
const ModelTypeLogisticRegression = "logistic_regression"

// Model is the serialized classifier. Coefficients are aligned index-for-index
// with the bundle's feature list.
type Model struct {
	Type         string    `json:"type"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// Bundle is the decoded model artifact.
type Bundle struct {
	SchemaVersion int      `json:"schema_version"`
	Model         Model    `json:"model"`
	Threshold     float64  `json:"threshold"`
	Features      []string `json:"features"`
}

// Load reads, schema-validates, and decodes a bundle from disk. Any failure
// here is a fatal startup condition for the service.
func Load(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewArtifactNotFoundError(path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(bundleSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, errors.NewArtifactMalformedError(err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, errors.NewArtifactSchemaInvalidError(strings.Join(details, "; "))
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errors.NewArtifactMalformedError(err)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// validate checks the cross-field invariants the JSON Schema cannot express.
// A bundle trained on anything but the questionnaire's exact feature set is
// unusable, so it fails here at startup instead of per-request.
func (b *Bundle) validate() error {
	if len(b.Model.Coefficients) != len(b.Features) {
		return errors.NewArtifactSchemaInvalidError(fmt.Sprintf(
			"coefficient count %d does not match feature count %d",
			len(b.Model.Coefficients), len(b.Features),
		))
	}

	known := survey.FeatureNames()
	if len(b.Features) != len(known) {
		return errors.NewArtifactSchemaInvalidError(fmt.Sprintf(
			"expected %d features, got %d", len(known), len(b.Features),
		))
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, f := range known {
		knownSet[f] = struct{}{}
	}
	for _, f := range b.Features {
		if _, ok := knownSet[f]; !ok {
			return errors.NewArtifactSchemaInvalidError(fmt.Sprintf("unknown feature: %s", f))
		}
	}
	return nil
}

// Vector assembles the one-row model input in the bundle's trained feature
// order, regardless of how the record was constructed.
func (b *Bundle) Vector(values map[string]float64) ([]float64, error) {
	row := make([]float64, len(b.Features))
	for i, feature := range b.Features {
		val, ok := values[feature]
		if !ok {
			return nil, errors.NewFeatureMissingError(feature)
		}
		row[i] = val
	}
	return row, nil
}

// PredictProba returns the positive-class probability for one input row.
func (b *Bundle) PredictProba(row []float64) (float64, error) {
	if len(row) != len(b.Model.Coefficients) {
		return 0, errors.NewPredictionFailedError(fmt.Errorf(
			"row length %d does not match coefficient count %d",
			len(row), len(b.Model.Coefficients),
		))
	}

	z := b.Model.Intercept
	for i, coef := range b.Model.Coefficients {
		z += coef * row[i]
	}
	return sigmoid(z), nil
}

// Predict builds the ordered input row from a feature record and scores it.
func (b *Bundle) Predict(values map[string]float64) (float64, error) {
	row, err := b.Vector(values)
	if err != nil {
		return 0, err
	}
	return b.PredictProba(row)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
