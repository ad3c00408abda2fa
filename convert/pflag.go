package convert

import (
	"fmt"
	flag "github.com/spf13/pflag"
)

// Value adapts any [flag.Value] into a [Func].
// A fresh value is created with newValue for every conversion, so a failed Set never leaks into a stored result.
func Value[V flag.Value](newValue func() V) Func[V] {
	if newValue == nil {
		panic("nil value constructor")
	}
	return func(arg string) (V, error) {
		val := newValue()
		if err := val.Set(arg); err != nil {
			var mt V
			return mt, fmt.Errorf("%w: invalid %s value %q: %w", ErrConversion, val.Type(), arg, err)
		}
		return val, nil
	}
}
