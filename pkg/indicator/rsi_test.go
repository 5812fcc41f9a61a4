package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func TestRSI(t *testing.T) {
	inc, err := NewRSI(num.Float64, 3)
	require.NoError(t, err)

	assert.Equal(t, 50.0, inc.Update(10))
	assert.Equal(t, 86.0, round(inc.Update(10.5), 0))
	assert.Equal(t, 35.0, round(inc.Update(10), 0))
	assert.Equal(t, 16.0, round(inc.Update(9.5), 0))
}

func TestRSI_Reset(t *testing.T) {
	inc, _ := NewRSI(num.Float64, 3)
	assert.Equal(t, 50.0, inc.UpdateK(closeBar(10)))
	assert.Equal(t, 86.0, round(inc.UpdateK(closeBar(10.5)), 0))

	inc.Reset()
	assert.Equal(t, 50.0, inc.Update(10))
	assert.Equal(t, 86.0, round(inc.Update(10.5), 0))
}

func TestRSI_FlatAfterSeedIsFinite(t *testing.T) {
	inc, _ := NewRSI(num.Float64, 2)
	for i := 0; i < 100; i++ {
		v := inc.Update(1)
		assert.False(t, v != v, "NaN at step %d", i)
	}
}

func TestStrengthIndex_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 50.0, strengthIndex(num.Float64, 0, 0))
	assert.Equal(t, 25.0, strengthIndex(num.Float64, 1, 3))
}

func TestRSISMMA(t *testing.T) {
	inc, err := NewRSISMMA(num.Float64, 3)
	require.NoError(t, err)

	assert.Equal(t, 9.0, round(inc.Update(10), 0))
	assert.Equal(t, 100.0, round(inc.Update(10.5), 0))
	assert.Equal(t, 40.0, round(inc.Update(10), 0))
	assert.Equal(t, 21.0, round(inc.Update(9.5), 0))

	inc.Reset()
	assert.Equal(t, 9.0, round(inc.UpdateK(closeBar(10)), 0))
	assert.Equal(t, "RSI_SMMA(3)", inc.String())
}
