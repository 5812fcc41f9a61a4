package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func roundMACD(o MACDOutput[float64]) [3]float64 {
	return [3]float64{round(o.MACD, 2), round(o.Signal, 2), round(o.Histogram, 2)}
}

func TestMACD(t *testing.T) {
	inc, err := NewMACD(num.Float64, 3, 6, 4)
	require.NoError(t, err)

	inputs := []float64{2, 3, 4.2, 7, 6.7, 6.5}
	expected := [][3]float64{
		{0, 0, 0},
		{0.21, 0.09, 0.13},
		{0.52, 0.26, 0.26},
		{1.15, 0.62, 0.54},
		{1.15, 0.83, 0.32},
		{0.94, 0.87, 0.07},
	}

	for i, v := range inputs {
		assert.Equal(t, expected[i], roundMACD(inc.Update(v)), "step %d", i)
	}
}

func TestMACD_Reset(t *testing.T) {
	inc, _ := NewMACD(num.Float64, 3, 6, 4)

	assert.Equal(t, [3]float64{0, 0, 0}, roundMACD(inc.UpdateK(closeBar(2))))
	assert.Equal(t, [3]float64{0.21, 0.09, 0.13}, roundMACD(inc.UpdateK(closeBar(3))))

	inc.Reset()
	assert.Equal(t, [3]float64{0, 0, 0}, roundMACD(inc.Update(2)))
	assert.Equal(t, [3]float64{0.21, 0.09, 0.13}, roundMACD(inc.Update(3)))
}

func TestMACD_InvalidWindows(t *testing.T) {
	for _, windows := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		_, err := NewMACD(num.Float64, windows[0], windows[1], windows[2])
		assert.ErrorIs(t, err, ErrInvalidParameter, "%v", windows)
	}
}
