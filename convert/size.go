package convert

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const sizeUnits = "KMGTPE"

// Size parses a byte count with an optional unit suffix.
//
// A single letter suffix (K, M, G, T, P, E) scales by powers of 1024, and the same letter followed by B (KB, MB, ...) scales by powers of 1000.
// So "4K" is 4096 and "4KB" is 4000.
func Size(arg string) (uint64, error) {
	num, suffix := arg, ""
	if i := strings.IndexFunc(arg, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		num, suffix = arg[:i], arg[i:]
	}
	if len(num) == 0 {
		return 0, fmt.Errorf("%w: size %q must start with a number", ErrConversion, arg)
	}
	val, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: size %q: %w", ErrConversion, arg, err)
	}
	if len(suffix) == 0 {
		return val, nil
	}

	var base uint64 = 1024
	switch {
	case len(suffix) == 2 && suffix[1] == 'B':
		base = 1000
	case len(suffix) != 1:
		return 0, fmt.Errorf("%w: unrecognized suffix in size %q", ErrConversion, arg)
	}
	exp := strings.IndexByte(sizeUnits, suffix[0]) + 1
	if exp == 0 {
		return 0, fmt.Errorf("%w: unrecognized suffix in size %q", ErrConversion, arg)
	}
	for ; exp > 0; exp-- {
		hi, lo := bits.Mul64(val, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w: size %q overflows 64 bits", ErrConversion, arg)
		}
		val = lo
	}
	return val, nil
}
