package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		millis   int64
		expected string
	}{
		{name: "época", millis: 0, expected: "19700101"},
		{name: "meio do dia", millis: 1700000000000, expected: "20231114"},
		{name: "uma hora depois continua no mesmo dia UTC", millis: 1700003600000, expected: "20231114"},
		{name: "virada do dia em UTC", millis: 1700006400000, expected: "20231115"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.millis))
		})
	}
}

func TestFormatHour(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	assert.Equal(t, "22", FormatHour(1700000000000, time.UTC))
	assert.Equal(t, "23", FormatHour(1700003600000, time.UTC))
	assert.Equal(t, "19", FormatHour(1700000000000, saoPaulo))
	assert.Len(t, FormatHour(1700000000000, nil), 2)
}

// A hora segue o fuso configurado enquanto a data segue UTC; o par pode não ser coerente.
func TestFormatDateAndHour_FusosDiferentes(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	millis := int64(1700006400000) // 2023-11-15 00:00 UTC, 09:00 em Tóquio
	assert.Equal(t, "20231115", FormatDate(millis))
	assert.Equal(t, "09", FormatHour(millis, tokyo))

	millis = int64(1699974000000) // 2023-11-14 15:00 UTC, 00:00 de 15/11 em Tóquio
	assert.Equal(t, "20231114", FormatDate(millis))
	assert.Equal(t, "00", FormatHour(millis, tokyo))
}
