package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
}

func TestParseUintOrDefault(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    uint64
		expectError bool
	}{
		{name: "Vazio usa padrão", value: "", expected: 10},
		{name: "Número válido", value: "25", expected: 25},
		{name: "Zero", value: "0", expected: 0},
		{name: "Negativo é inválido", value: "-1", expectError: true},
		{name: "Texto é inválido", value: "dez", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseUintOrDefault(tt.value, 10)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestStringOrDefault(t *testing.T) {
	assert.Equal(t, "6 months", StringOrDefault("", "6 months"))
	assert.Equal(t, "6 months", StringOrDefault("   ", "6 months"))
	assert.Equal(t, "1 year", StringOrDefault("1 year", "6 months"))
}
