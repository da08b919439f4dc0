package math

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for input outside the domain of factorial.
	ErrInvalidArgument = errors.New("factorial is not defined for negative values")
	// ErrNotInteger is returned when untrusted input is not a base-10 integer.
	ErrNotInteger = errors.New("input is not an integer")
)

// Factorial calculates the factorial of a given non-negative integer.
// The result is arbitrary precision, so it never overflows.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, errors.WithStack(ErrInvalidArgument)
	}

	result := big.NewInt(1)
	if n == 0 || n == 1 {
		return result, nil
	}

	var factor big.Int
	for i := int64(2); i <= n; i++ {
		result.Mul(result, factor.SetInt64(i))
	}

	return result, nil
}

// ParseArgument converts user input into a factorial argument.
// Only plain base-10 integers are accepted; the input is never evaluated.
func ParseArgument(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.Wrap(ErrNotInteger, "empty input")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNotInteger, "parse %q", s)
	}

	return n, nil
}
