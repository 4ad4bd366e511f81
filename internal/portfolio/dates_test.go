package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_SlashFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"15/03/2021", "2021-03-15"},
		{"01/01/1900", "1900-01-01"},
		{"31/12/2100", "2100-12-31"},
		{"29/02/2020", "2020-02-29"}, // leap year
		{" 5/11/2019 ", "2019-11-05"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_ISOFormat(t *testing.T) {
	got, err := NormalizeDate("2021-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-15", got)
}

func TestNormalizeDate_Invalid(t *testing.T) {
	tests := []string{
		"30/02/2021", // impossible calendar date
		"29/02/2019", // not a leap year
		"31/04/2021", // April has 30 days
		"00/01/2021",
		"32/01/2021",
		"15/13/2021",
		"15/03/1899", // before year range
		"15/03/2101", // after year range
		"2021-02-30",
		"2021/03/15", // wrong separator order
		"15-03-2021",
		"March 15, 2021",
		"",
		"abc",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeDate(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

func TestNormalizeDate_LeapYearRoundTrip(t *testing.T) {
	// 29/02은 윤년에서만 유효
	got, err := NormalizeDate("29/02/2020")
	require.NoError(t, err)
	assert.Equal(t, "2020-02-29", got)

	_, err = NormalizeDate("29/02/2019")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
