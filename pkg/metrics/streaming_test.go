package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/registry"
	"github.com/c9s/streamta/pkg/types"
)

func TestInstrument(t *testing.T) {
	reg := registry.New(num.Float64)
	r, err := reg.Parse("SMA(2)")
	require.NoError(t, err)

	wrapped := Instrument(r)
	assert.Equal(t, "SMA(2)", wrapped.String())
	assert.Equal(t, r.Columns(), wrapped.Columns())

	before := testutil.ToFloat64(IndicatorUpdatesMetrics.WithLabelValues("SMA(2)"))

	for _, c := range []float64{1, 3} {
		bar, err := types.NewBarBuilder(num.Float64).Open(c).High(c).Low(c).Close(c).Volume(0).Build()
		require.NoError(t, err)
		wrapped.Push(bar)
	}

	after := testutil.ToFloat64(IndicatorUpdatesMetrics.WithLabelValues("SMA(2)"))
	assert.Equal(t, 2.0, after-before)
}
