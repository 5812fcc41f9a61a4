package num

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind names a numeric representation selectable from configuration.
type Kind string

const (
	KindFloat64 Kind = "float64"
	KindFloat32 Kind = "float32"
	KindFixed   Kind = "fixed"
	KindDecimal Kind = "decimal"
)

var ErrUnknownKind = errors.New("unknown numeric kind")

var kinds = []Kind{KindFloat64, KindFloat32, KindFixed, KindDecimal}

func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", "float", "f64":
		return KindFloat64, nil
	case "f32":
		return KindFloat32, nil
	case "fixedpoint":
		return KindFixed, nil
	case KindFloat64, KindFloat32, KindFixed, KindDecimal:
		return k, nil
	}

	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}
