// Package convert provides the pluggable step that turns one argument into a typed value.
//
// A [Func] either produces a value or an error wrapping [ErrConversion].
// Parsers treat a conversion failure exactly like a non-match, so a malformed value simply isn't consumed.
//
// Built-in conversions parse the whole argument strictly. Trailing characters that aren't part of the value cause failure.
package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	ErrConversion = errors.New("conversion failed")
)

// Func converts a single argument to a value of type T.
type Func[T any] func(arg string) (T, error)

// Emplace converts arg with fn, and only writes dst if conversion succeeds.
func Emplace[T any](fn Func[T], arg string, dst *T) error {
	val, err := fn(arg)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

// Append converts arg with fn, and only appends to dst if conversion succeeds.
func Append[T any](fn Func[T], arg string, dst *[]T) error {
	val, err := fn(arg)
	if err != nil {
		return err
	}
	*dst = append(*dst, val)
	return nil
}

// String passes the argument through unchanged, and never fails.
func String(arg string) (string, error) {
	return arg, nil
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

func bitSize[T any]() int {
	var mt T
	return reflect.TypeOf(mt).Bits()
}

// Int creates a [Func] that parses a base 10 signed integer that must fit in T.
func Int[T Signed]() Func[T] {
	bits := bitSize[T]()
	return func(arg string) (T, error) {
		val, err := strconv.ParseInt(arg, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a %d-bit integer: %w", ErrConversion, arg, bits, err)
		}
		return T(val), nil
	}
}

// Uint creates a [Func] that parses a base 10 unsigned integer that must fit in T.
func Uint[T Unsigned]() Func[T] {
	bits := bitSize[T]()
	return func(arg string) (T, error) {
		val, err := strconv.ParseUint(arg, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a %d-bit unsigned integer: %w", ErrConversion, arg, bits, err)
		}
		return T(val), nil
	}
}

// FloatOf creates a [Func] that parses a floating point number that must fit in T.
func FloatOf[T Float]() Func[T] {
	bits := bitSize[T]()
	return func(arg string) (T, error) {
		val, err := strconv.ParseFloat(arg, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a %d-bit float: %w", ErrConversion, arg, bits, err)
		}
		return T(val), nil
	}
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// BoolIf creates a [Func] that translates an argument to a boolean using the given translation map.
// Values are compared case-insensitive, and anything not present in the map fails conversion.
func BoolIf(translation map[bool][]string) Func[bool] {
	return func(arg string) (bool, error) {
		lower := strings.ToLower(arg)
		for _, val := range []bool{true, false} {
			for _, candidate := range translation[val] {
				if lower == strings.ToLower(candidate) {
					return val, nil
				}
			}
		}
		return false, fmt.Errorf("%w: %q is not a boolean value", ErrConversion, arg)
	}
}

// Bool interprets an argument as a boolean, using [DefaultTrue] and [DefaultFalse].
func Bool(arg string) (bool, error) {
	return BoolIf(map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})(arg)
}

// Duration interprets an argument with [time.ParseDuration].
func Duration(arg string) (time.Duration, error) {
	dur, err := time.ParseDuration(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a duration: %w", ErrConversion, arg, err)
	}
	return dur, nil
}

// Enum creates a [Func] that maps exact literals to values.
// An unrecognized literal fails conversion.
func Enum[T any](literals map[string]T) Func[T] {
	return func(arg string) (T, error) {
		val, ok := literals[arg]
		if !ok {
			var mt T
			return mt, fmt.Errorf("%w: unrecognized value %q", ErrConversion, arg)
		}
		return val, nil
	}
}
