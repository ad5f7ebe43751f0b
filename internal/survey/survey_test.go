package survey

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diabetes-risk/internal/common/errors"
)

func validForm() url.Values {
	return url.Values{
		"HighBP":               {"1"},
		"HighChol":             {"0"},
		"BMI":                  {"24"},
		"Stroke":               {"0"},
		"HeartDiseaseorAttack": {"0"},
		"PhysActivity":         {"1"},
		"HvyAlcoholConsump":    {"0"},
		"GenHlth":              {"3"},
		"DiffWalk":             {"0"},
		"Sex":                  {"1"},
		"Age":                  {"45"},
	}
}

func TestFeatureNames_FixedOrder(t *testing.T) {
	expected := []string{
		"HighBP", "HighChol", "BMI", "Stroke", "HeartDiseaseorAttack",
		"PhysActivity", "HvyAlcoholConsump", "GenHlth", "DiffWalk", "Sex", "Age",
	}
	assert.Equal(t, expected, FeatureNames())
}

func TestParseForm_Success(t *testing.T) {
	rec, err := ParseForm(validForm())
	require.NoError(t, err)
	require.Len(t, rec, 11)

	assert.Equal(t, 1.0, rec["HighBP"])
	assert.Equal(t, 24.0, rec["BMI"])
	assert.Equal(t, 3.0, rec["GenHlth"])
	assert.Equal(t, 45.0, rec["Age"])
}

func TestParseForm_Errors(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(url.Values)
		expectedCode errors.ErrorCode
	}{
		{
			name:         "missing radio field",
			mutate:       func(v url.Values) { v.Del("Stroke") },
			expectedCode: errors.ErrCodeInvalidSubmission,
		},
		{
			name:         "non-numeric value",
			mutate:       func(v url.Values) { v.Set("BMI", "heavy") },
			expectedCode: errors.ErrCodeInvalidSubmission,
		},
		{
			name:         "BMI below slider minimum",
			mutate:       func(v url.Values) { v.Set("BMI", "5") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "BMI above slider maximum",
			mutate:       func(v url.Values) { v.Set("BMI", "61") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "BMI not-a-number literal",
			mutate:       func(v url.Values) { v.Set("BMI", "NaN") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "age positive infinity",
			mutate:       func(v url.Values) { v.Set("Age", "+Inf") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "age negative infinity",
			mutate:       func(v url.Values) { v.Set("Age", "-Inf") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "age above slider maximum",
			mutate:       func(v url.Values) { v.Set("Age", "150") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "binary flag outside 0/1",
			mutate:       func(v url.Values) { v.Set("HighBP", "2") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
		{
			name:         "general health outside 1-5",
			mutate:       func(v url.Values) { v.Set("GenHlth", "6") },
			expectedCode: errors.ErrCodeValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			_, err := ParseForm(form)
			require.Error(t, err)

			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, stdErr.Code)
		})
	}
}

func TestParseForm_SliderBoundsInclusive(t *testing.T) {
	form := validForm()
	form.Set("BMI", "10")
	form.Set("Age", "0")
	rec, err := ParseForm(form)
	require.NoError(t, err)
	assert.Equal(t, 10.0, rec["BMI"])
	assert.Equal(t, 0.0, rec["Age"])

	form.Set("BMI", "60")
	form.Set("Age", "100")
	rec, err = ParseForm(form)
	require.NoError(t, err)
	assert.Equal(t, 60.0, rec["BMI"])
	assert.Equal(t, 100.0, rec["Age"])
}

func TestFromMap(t *testing.T) {
	values := map[string]float64{
		"HighBP": 1, "HighChol": 0, "BMI": 30, "Stroke": 0,
		"HeartDiseaseorAttack": 1, "PhysActivity": 0, "HvyAlcoholConsump": 0,
		"GenHlth": 4, "DiffWalk": 1, "Sex": 0, "Age": 62,
	}

	rec, err := FromMap(values)
	require.NoError(t, err)
	assert.Len(t, rec, 11)
	assert.Equal(t, 30.0, rec["BMI"])

	delete(values, "Sex")
	_, err = FromMap(values)
	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeFeatureMissing, stdErr.Code)
}
