package envvar

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every variable read through Key.
const Prefix = "STREAMTA_"

// Key returns the prefixed variable name of n.
func Key(n string) string {
	return Prefix + n
}

func lookup[T any](n string, parse func(string) (T, error), typeName string, args []T) (T, bool) {
	var defaultValue T
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %q as %s, incorrect format", str, typeName)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, func(s string) (string, error) { return s, nil }, "string", args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, strconv.ParseBool, "bool", args)
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}
