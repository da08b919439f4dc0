package main

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/factorial/math"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, math.NewCalculator(), "5"))
	require.Equal(t, "Factorial of 5 is 120\n", out.String())
}

func TestRunRejectsInvalidInput(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, math.NewCalculator(), "5; rm -rf /")
	require.True(t, errors.Is(err, math.ErrNotInteger))

	err = run(&out, math.NewCalculator(), "-3")
	require.True(t, errors.Is(err, math.ErrInvalidArgument))

	require.Empty(t, out.String())
}

func TestLogObserver(t *testing.T) {
	var logs bytes.Buffer
	calc := math.NewCalculator(math.WithObserver(logObserver(log.New(&logs, "", 0))))

	var out bytes.Buffer
	require.NoError(t, run(&out, calc, "10"))
	require.Error(t, run(&out, calc, "-1"))

	require.Equal(t,
		"factorial(10) computed, 7 digits\n"+
			"factorial(-1) failed: factorial is not defined for negative values\n",
		logs.String())
}
