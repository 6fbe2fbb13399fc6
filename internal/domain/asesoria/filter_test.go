package asesoria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
)

func TestParseFilterCombinations(t *testing.T) {
	f, err := ParseFilter("", "", "")
	require.NoError(t, err)
	assert.Empty(t, f.Estado)
	assert.False(t, f.HasRange())

	f, err = ParseFilter("Pendiente", "", "")
	require.NoError(t, err)
	assert.Equal(t, EstadoPendiente, f.Estado)

	f, err = ParseFilter("", "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.True(t, f.HasRange())
	assert.Equal(t, "2026-01-31", f.Hasta.Format(DateLayout))

	f, err = ParseFilter("aprobada", "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, EstadoAprobada, f.Estado)
	assert.True(t, f.HasRange())
}

func TestParseFilterRejectsHalfRange(t *testing.T) {
	cases := [][3]string{
		{"", "2026-01-01", ""},
		{"", "", "2026-01-31"},
		{"aprobada", "2026-01-01", ""},
	}

	for _, c := range cases {
		_, err := ParseFilter(c[0], c[1], c[2])
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_filter"))
	}
}

func TestParseFilterRejectsBadDates(t *testing.T) {
	_, err := ParseFilter("", "2026-13-01", "2026-01-31")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = ParseFilter("", "2026-01-01", "ayer")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
