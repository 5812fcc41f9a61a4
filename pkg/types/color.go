package types

// Color classifies a candle body or an ichimoku cloud.
type Color int

const (
	Red Color = iota
	Green
)

func (c Color) String() string {
	if c == Green {
		return "green"
	}
	return "red"
}
