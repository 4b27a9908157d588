package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotnav/internal/errs"
)

func mustMapper(t *testing.T, min, max, low, high float64) *Mapper {
	t.Helper()
	a, err := New(min, max)
	require.NoError(t, err)
	m, err := NewMapper(a, low, high)
	require.NoError(t, err)
	return m
}

func TestAxisRange(t *testing.T) {
	a, err := New(-5, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, a.Span())
	assert.True(t, a.Contains(5))
	assert.Equal(t, -5.0, a.Clamp(-7))

	assert.ErrorIs(t, a.SetRange(3, 1), errs.ErrInvalidParameter)
	assert.ErrorIs(t, a.SetRange(math.NaN(), 1), errs.ErrInvalidParameter)
	assert.ErrorIs(t, a.SetRange(math.Inf(-1), 1), errs.ErrInvalidParameter)
	assert.ErrorIs(t, a.SetRange(0, math.Inf(1)), errs.ErrInvalidParameter)
	min, max := a.Range()
	assert.Equal(t, []float64{-5, 5}, []float64{min, max}, "failed SetRange leaves the axis unchanged")

	_, err = New(2, 2)
	assert.NoError(t, err, "degenerate axes are legal")
}

func TestMapperRoundTrip(t *testing.T) {
	cases := []struct {
		min, max, low, high float64
	}{
		{0, 10, 0, 100},
		{-5, 5, 400, 0},
		{1e-6, 3e-6, 10, 20},
		{-1e9, 1e9, 0, 1920},
	}
	for _, c := range cases {
		m := mustMapper(t, c.min, c.max, c.low, c.high)
		for i := 0; i <= 20; i++ {
			v := c.min + float64(i)/20*(c.max-c.min)
			s, err := m.ToScreen(v, false, false)
			require.NoError(t, err)
			back, err := m.ToData(s)
			require.NoError(t, err)
			assert.InDelta(t, v, back, 1e-9*math.Max(1, math.Abs(c.max-c.min)), "value %v on %+v", v, c)
		}
	}
}

func TestMapperLinear(t *testing.T) {
	m := mustMapper(t, 0, 10, 0, 100)
	s, err := m.ToScreen(2.5, false, false)
	require.NoError(t, err)
	assert.Equal(t, 25.0, s)

	s, _ = m.ToScreen(12, false, false)
	assert.Equal(t, 120.0, s, "no clamping unless asked")
	s, _ = m.ToScreen(12, true, false)
	assert.Equal(t, 100.0, s)
	s, _ = m.ToScreen(-3, true, false)
	assert.Equal(t, 0.0, s)

	reversed := mustMapper(t, 0, 10, 100, 0)
	s, _ = reversed.ToScreen(2.5, false, false)
	assert.Equal(t, 75.0, s)
}

func TestMapperRoundsAfterMapping(t *testing.T) {
	m := mustMapper(t, 0, 3, 0, 10)
	// 0.4 maps to 1.33; rounding the value before mapping would give 0.
	s, err := m.ToScreen(0.4, false, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
	s, _ = m.ToScreen(1.38, false, true)
	assert.Equal(t, 5.0, s)

	// Rounding is lossy.
	back, _ := m.ToData(1.0)
	assert.NotEqual(t, 0.4, back)
}

func TestMapperDegenerateAxis(t *testing.T) {
	m := mustMapper(t, 7, 7, 30, 90)
	for _, v := range []float64{-100, 0, 7, 7.0001, 1e12} {
		for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
			s, err := m.ToScreen(v, flags[0], flags[1])
			require.NoError(t, err)
			assert.Equal(t, 30.0, s)
		}
	}
	d, err := m.ToData(55)
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)
}

func TestMapperReadsAxisOnEveryCall(t *testing.T) {
	m := mustMapper(t, 0, 10, 0, 100)
	s, _ := m.ToScreen(5, false, false)
	assert.Equal(t, 50.0, s)
	require.NoError(t, m.Axis().SetRange(0, 20))
	s, _ = m.ToScreen(5, false, false)
	assert.Equal(t, 25.0, s)
}

func TestMapperErrors(t *testing.T) {
	a, _ := New(0, 1)
	_, err := NewMapper(a, 5, 5)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = NewMapper(a, 0, math.Inf(1))
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = NewMapper(a, math.NaN(), 1)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	m, err := NewMapper(nil, 0, 100)
	require.NoError(t, err)
	_, err = m.ToScreen(1, false, false)
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)
	_, err = m.ToData(1)
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)
	_, err = m.Ticks(TickConfig{})
	assert.ErrorIs(t, err, errs.ErrMissingCollaborator)

	m.Attach(a)
	s, err := m.ToScreen(1, false, false)
	require.NoError(t, err)
	assert.Equal(t, 100.0, s)
}
