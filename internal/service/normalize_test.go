package service

import (
	"testing"

	"turnos-backend/internal/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "07:00", want: "07:00"},
		{input: "7", want: "07:00"},
		{input: "7:30", want: "07:30"},
		{input: "23:59", want: "23:59"},
		{input: "0", want: "00:00"},
		{input: "7:30 pm", want: "19:30"},
		{input: "7PM", want: "19:00"},
		{input: "12 am", want: "00:00"},
		{input: "12 pm", want: "12:00"},
		{input: " 9:15 ", want: "09:15"},
		{input: "25:00", wantErr: true},
		{input: "07:60", wantErr: true},
		{input: "13 pm", wantErr: true},
		{input: "0 am", wantErr: true},
		{input: "siete", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	cal := dates.Default()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2025-01-15", want: "2025-01-15"},
		{input: "15/1/2025", want: "2025-01-15"},
		{input: "15/01/2025", want: "2025-01-15"},
		{input: "1-2-2025", want: "2025-02-01"},
		{input: "2025-02-30", wantErr: true},
		{input: "32/01/2025", wantErr: true},
		{input: "enero 15", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeDate(cal, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDateUSLocale(t *testing.T) {
	cal, err := dates.New(dates.Config{Timezone: "America/New_York", Locale: "en-US"})
	require.NoError(t, err)

	got, err := NormalizeDate(cal, "1/15/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", got)
}

func TestNormalizeVacationFlag(t *testing.T) {
	truthy := []string{"sí", "Si", "SI", "true", "TRUE", "1", "verdadero", "yes", " sí "}
	for _, v := range truthy {
		assert.True(t, NormalizeVacationFlag(v), "expected %q to read as vacation", v)
	}

	falsy := []string{"", "no", "false", "0", "falso", "2", "maybe"}
	for _, v := range falsy {
		assert.False(t, NormalizeVacationFlag(v), "expected %q to read as not vacation", v)
	}
}
