package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateToolID(t *testing.T) {
	tests := []struct {
		name    string
		toolID  string
		wantErr bool
	}{
		{"valid", "gaussian.add", false},
		{"valid with dash", "gaussian.log-pdf", false},
		{"empty", "", true},
		{"no service prefix", "add", true},
		{"invalid characters", "gaussian.add;drop", true},
		{"too long", "gaussian." + strings.Repeat("a", MaxIDLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToolID(tt.toolID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSONDepth(t *testing.T) {
	shallow := map[string]interface{}{
		"a": map[string]interface{}{"mean": 1.0, "standard_deviation": 0.1},
	}
	assert.NoError(t, ValidateJSONDepth(shallow, 2))

	var deep interface{} = 1.0
	for i := 0; i < 5; i++ {
		deep = []interface{}{deep}
	}
	assert.Error(t, ValidateJSONDepth(deep, 3))
	assert.NoError(t, ValidateJSONDepth(deep, 5))
}
