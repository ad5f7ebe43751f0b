// Package survey defines the eleven-question lifestyle/health questionnaire
// and builds the transient per-submission feature record.
package survey

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"diabetes-risk/internal/common/errors"
)

// Widget kinds mirror the original form controls.
const (
	WidgetRadio  = "radio"
	WidgetSlider = "slider"
	WidgetSelect = "select"
)

// Option is one selectable choice of a radio or select widget.
type Option struct {
	Label string
	Value float64
}

// Question describes one form input and its structural bounds.
type Question struct {
	Feature string
	Label   string
	Widget  string
	Min     float64
	Max     float64
	Default float64
	Options []Option
}

var yesNo = []Option{{"No", 0}, {"Yes", 1}}

// Questions lists the questionnaire in the fixed model feature order:
// HighBP, HighChol, BMI, Stroke, HeartDiseaseorAttack, PhysActivity,
// HvyAlcoholConsump, GenHlth, DiffWalk, Sex, Age.
var Questions = []Question{
	{
		Feature: "HighBP",
		Label:   "Do you have high blood pressure? (More than 130/80 mmHg)",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "HighChol",
		Label:   "Do you have high cholesterol? (More than 240 mg/dL)",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "BMI",
		Label:   "BMI",
		Widget:  WidgetSlider,
		Min:     10,
		Max:     60,
		Default: 24,
	},
	{
		Feature: "Stroke",
		Label:   "Have you ever had a stroke?",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "HeartDiseaseorAttack",
		Label:   "Have you had heart disease or heart attack?",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "PhysActivity",
		Label:   "Do you do any physical activities?",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "HvyAlcoholConsump",
		Label:   "Heavy alcohol consumption? (More than 4 drinks a day for men, 3 for women)",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "GenHlth",
		Label:   "General Health (1=Excellent, 5=Poor)",
		Widget:  WidgetSelect,
		Min:     1,
		Max:     5,
		Default: 1,
		Options: []Option{{"1", 1}, {"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}},
	},
	{
		Feature: "DiffWalk",
		Label:   "Do you have difficulty walking?",
		Widget:  WidgetRadio,
		Options: yesNo,
	},
	{
		Feature: "Sex",
		Label:   "Gender",
		Widget:  WidgetRadio,
		Options: []Option{{"Female", 0}, {"Male", 1}},
	},
	{
		Feature: "Age",
		Label:   "Age",
		Widget:  WidgetSlider,
		Min:     0,
		Max:     100,
		Default: 18,
	},
}

// Record is the transient one-row feature mapping built per submission.
// Ordering is owned by the model artifact's feature list, not the record.
type Record map[string]float64

// FeatureNames returns the canonical feature names in questionnaire order.
func FeatureNames() []string {
	names := make([]string, len(Questions))
	for i, q := range Questions {
		names[i] = q.Feature
	}
	return names
}

// ParseForm builds a Record from submitted form values. Values are held to the
// same structural bounds the widgets enforce; anything else is rejected.
func ParseForm(values url.Values) (Record, error) {
	rec := make(Record, len(Questions))
	for _, q := range Questions {
		raw := values.Get(q.Feature)
		if raw == "" {
			return nil, errors.NewInvalidSubmissionError(fmt.Sprintf("missing field: %s", q.Feature))
		}

		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewInvalidSubmissionError(fmt.Sprintf("field %s: not a number: %q", q.Feature, raw))
		}

		if err := q.CheckBounds(val); err != nil {
			return nil, err
		}
		rec[q.Feature] = val
	}
	return rec, nil
}

// CheckBounds rejects values the widget could not have produced.
func (q Question) CheckBounds(val float64) error {
	switch q.Widget {
	case WidgetRadio, WidgetSelect:
		for _, opt := range q.Options {
			if val == opt.Value {
				return nil
			}
		}
		return errors.NewValueOutOfRangeError(q.Feature, val)
	case WidgetSlider:
		// NaN compares false against both bounds, so it must be ruled out
		// explicitly before the range test.
		if math.IsNaN(val) || val < q.Min || val > q.Max {
			return errors.NewValueOutOfRangeError(q.Feature, val)
		}
		return nil
	default:
		return errors.NewInvalidSubmissionError(fmt.Sprintf("unknown widget kind: %s", q.Widget))
	}
}

// FromMap builds a Record from an already-decoded map, applying the same
// bounds checks as ParseForm. Used by the JSON API.
func FromMap(values map[string]float64) (Record, error) {
	rec := make(Record, len(Questions))
	for _, q := range Questions {
		val, ok := values[q.Feature]
		if !ok {
			return nil, errors.NewFeatureMissingError(q.Feature)
		}
		if err := q.CheckBounds(val); err != nil {
			return nil, err
		}
		rec[q.Feature] = val
	}
	return rec, nil
}
