package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-stats-service/internal/stats"
)

type row struct {
	name string
	rp   *float64
}

func f(v float64) *float64 { return &v }

func byRP(r row) (float64, bool) { return stats.Float(r.rp) }

func TestCount(t *testing.T) {
	assert.Equal(t, 0, stats.Count([]row{}))
	assert.Equal(t, 0, stats.Count[row](nil))
	assert.Equal(t, 2, stats.Count([]row{{}, {}}))
}

func TestAverage_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, stats.Average([]row{}, byRP))
	assert.Equal(t, 0.0, stats.Average[row](nil, byRP))
}

func TestAverage_NullCountsAsZero(t *testing.T) {
	rows := []row{{rp: f(10)}, {rp: f(20)}, {rp: nil}}
	assert.Equal(t, 10.0, stats.Average(rows, byRP))
}

func TestAverage_OrderIndependent(t *testing.T) {
	a := []row{{rp: f(4)}, {rp: f(8)}, {rp: f(15)}, {rp: nil}, {rp: f(1)}}
	b := []row{a[3], a[1], a[4], a[0], a[2]}
	assert.Equal(t, stats.Average(a, byRP), stats.Average(b, byRP))
}

func TestMaxBy(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := stats.MaxBy([]row{}, byRP)
		assert.False(t, ok)
	})

	t.Run("single element is returned whatever its value", func(t *testing.T) {
		got, ok := stats.MaxBy([]row{{name: "only", rp: nil}}, byRP)
		require.True(t, ok)
		assert.Equal(t, "only", got.name)
	})

	t.Run("greatest wins", func(t *testing.T) {
		rows := []row{{name: "a", rp: f(10)}, {name: "b", rp: f(20)}, {name: "c"}}
		got, ok := stats.MaxBy(rows, byRP)
		require.True(t, ok)
		assert.Equal(t, "b", got.name)
	})

	t.Run("first seen wins ties", func(t *testing.T) {
		rows := []row{{name: "a", rp: f(5)}, {name: "b", rp: f(7)}, {name: "c", rp: f(7)}}
		got, _ := stats.MaxBy(rows, byRP)
		assert.Equal(t, "b", got.name)
	})

	t.Run("missing counts as zero", func(t *testing.T) {
		rows := []row{{name: "neg", rp: f(-3)}, {name: "null"}}
		got, _ := stats.MaxBy(rows, byRP)
		assert.Equal(t, "null", got.name)
	})
}

func TestMaxBy_Time(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	type member struct {
		name   string
		joined *time.Time
	}
	rows := []member{{"old", &older}, {"none", nil}, {"new", &newer}}

	got, ok := stats.MaxBy(rows, func(m member) (float64, bool) { return stats.Time(m.joined) })
	require.True(t, ok)
	assert.Equal(t, "new", got.name)
}

func TestNormalizedPercentage(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{0.5, 50},
		{1, 100},
		{75, 75},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stats.NormalizedPercentage(tt.raw), "raw=%v", tt.raw)
	}
}

func TestAveragePercentage_MixedScales(t *testing.T) {
	rows := []row{{rp: f(0.5)}, {rp: f(70)}, {rp: nil}}
	// (50 + 70 + 0) / 3
	assert.Equal(t, 40.0, stats.AveragePercentage(rows, byRP))
}

func TestInt(t *testing.T) {
	n := int64(7)
	v, ok := stats.Int(&n)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = stats.Int(nil)
	assert.False(t, ok)
}
