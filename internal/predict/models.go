// internal/predict/models.go
package predict

import (
	"diabetes-risk/internal/risk"
	"diabetes-risk/internal/survey"
)

// PredictRequest is the JSON API input: the eleven model features by name.
// Pointer fields so a legitimate zero (a "No" answer) still satisfies required.
type PredictRequest struct {
	HighBP               *float64 `json:"HighBP" binding:"required"`
	HighChol             *float64 `json:"HighChol" binding:"required"`
	BMI                  *float64 `json:"BMI" binding:"required"`
	Stroke               *float64 `json:"Stroke" binding:"required"`
	HeartDiseaseorAttack *float64 `json:"HeartDiseaseorAttack" binding:"required"`
	PhysActivity         *float64 `json:"PhysActivity" binding:"required"`
	HvyAlcoholConsump    *float64 `json:"HvyAlcoholConsump" binding:"required"`
	GenHlth              *float64 `json:"GenHlth" binding:"required"`
	DiffWalk             *float64 `json:"DiffWalk" binding:"required"`
	Sex                  *float64 `json:"Sex" binding:"required"`
	Age                  *float64 `json:"Age" binding:"required"`
}

// ToMap flattens the request into a feature-name map for record construction.
func (r *PredictRequest) ToMap() map[string]float64 {
	return map[string]float64{
		"HighBP":               *r.HighBP,
		"HighChol":             *r.HighChol,
		"BMI":                  *r.BMI,
		"Stroke":               *r.Stroke,
		"HeartDiseaseorAttack": *r.HeartDiseaseorAttack,
		"PhysActivity":         *r.PhysActivity,
		"HvyAlcoholConsump":    *r.HvyAlcoholConsump,
		"GenHlth":              *r.GenHlth,
		"DiffWalk":             *r.DiffWalk,
		"Sex":                  *r.Sex,
		"Age":                  *r.Age,
	}
}

// PredictResponse is the JSON API output.
type PredictResponse struct {
	Probability float64 `json:"probability"`
	Threshold   float64 `json:"threshold"`
	Diabetic    bool    `json:"diabetic"`
	RiskLevel   string  `json:"risk_level,omitempty"`
	RiskClass   string  `json:"risk_class"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// QuestionView pairs a questionnaire entry with the value to render.
type QuestionView struct {
	survey.Question
	Value float64
}

// FormView is the data passed to the page template.
type FormView struct {
	Title     string
	Questions []QuestionView
	Result    *risk.Result
	Error     string
}
