package indicator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func TestMinValue(t *testing.T) {
	inc, err := NewMinValue(num.Float64, 3)
	require.NoError(t, err)

	inputs := []float64{4, 1.2, 5, 3, 4, 6, 7, 8, -9, 0}
	expected := []float64{4, 1.2, 1.2, 1.2, 3, 3, 4, 6, -9, -9}
	for i, v := range inputs {
		assert.Equal(t, expected[i], inc.Update(v), "step %d", i)
	}
}

func TestMaxValue(t *testing.T) {
	inc, err := NewMaxValue(num.Float64, 3)
	require.NoError(t, err)

	inputs := []float64{7, 5, 4, 4, 8}
	expected := []float64{7, 7, 7, 5, 8}
	for i, v := range inputs {
		assert.Equal(t, expected[i], inc.Update(v), "step %d", i)
	}
}

func TestMinMax_Bars(t *testing.T) {
	minValue, _ := NewMinValue(num.Float64, 2)
	maxValue, _ := NewMaxValue(num.Float64, 2)

	bars := []testBar{hlc(10, 5, 7), hlc(12, 6, 8), hlc(9, 7, 8)}
	lows := []float64{5, 5, 6}
	highs := []float64{10, 12, 12}
	for i, b := range bars {
		assert.Equal(t, lows[i], minValue.UpdateK(b))
		assert.Equal(t, highs[i], maxValue.UpdateK(b))
	}
}

func TestMinMax_WindowOne(t *testing.T) {
	minValue, err := NewMinValue(num.Float64, 1)
	require.NoError(t, err)
	maxValue, err := NewMaxValue(num.Float64, 1)
	require.NoError(t, err)

	for _, v := range []float64{3, 1, 2, 2, 5} {
		assert.Equal(t, v, minValue.Update(v))
		assert.Equal(t, v, maxValue.Update(v))
	}
}

func TestMinMax_BruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for _, window := range []int{1, 2, 3, 7, 20} {
		minValue, _ := NewMinValue(num.Float64, window)
		maxValue, _ := NewMaxValue(num.Float64, window)

		var history []float64
		for step := 0; step < 500; step++ {
			// few distinct values so ties and evictions of the extreme happen often
			v := float64(rnd.Intn(10))
			history = append(history, v)

			from := len(history) - window
			if from < 0 {
				from = 0
			}

			lo, hi := history[from], history[from]
			for _, h := range history[from:] {
				lo = min(lo, h)
				hi = max(hi, h)
			}

			assert.Equal(t, lo, minValue.Update(v), "window %d step %d", window, step)
			assert.Equal(t, hi, maxValue.Update(v), "window %d step %d", window, step)
		}
	}
}

func TestMinMax_Reset(t *testing.T) {
	inc, _ := NewMinValue(num.Float64, 3)
	inc.Update(1)
	inc.Update(0)
	inc.Reset()
	assert.Equal(t, 5.0, inc.Update(5))
	assert.Equal(t, 4.0, inc.Update(4))
}
