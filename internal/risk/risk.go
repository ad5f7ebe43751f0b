// Package risk implements the threshold and probability-band classification rule.
package risk

// Level is the human-readable risk label attached to a positive classification.
type Level string

const (
	LevelLow    Level = "Low Risk"
	LevelMedium Level = "Medium Risk"
	LevelHigh   Level = "High Risk"
)

// band is a half-open probability interval [Min, Max).
type band struct {
	Min      float64
	Max      float64
	Level    Level
	CSSClass string
}

var bands = []band{
	{0.0, 0.3, LevelLow, "low"},
	{0.3, 0.5, LevelMedium, "medium"},
	{0.5, 1.0, LevelHigh, "high"},
}

// Result is the outcome of classifying one predicted probability.
type Result struct {
	Diabetic    bool
	Probability float64
	Threshold   float64
	Level       Level
	CSSClass    string
}

// Classify buckets a positive-class probability against the decision threshold.
// Below the threshold the submission is negative. At or above it, the
// probability is scanned against the half-open risk bands, with High Risk as
// the fallback so values at or above 1.0 are still captured.
func Classify(p, threshold float64) Result {
	if p < threshold {
		return Result{
			Diabetic:    false,
			Probability: p,
			Threshold:   threshold,
			CSSClass:    "no",
		}
	}

	level, class := Band(p)
	return Result{
		Diabetic:    true,
		Probability: p,
		Threshold:   threshold,
		Level:       level,
		CSSClass:    class,
	}
}

// Band returns the risk label for a probability, High Risk if no band captures it.
func Band(p float64) (Level, string) {
	for _, b := range bands {
		if b.Min <= p && p < b.Max {
			return b.Level, b.CSSClass
		}
	}
	return LevelHigh, "high"
}
