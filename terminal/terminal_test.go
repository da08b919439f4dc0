package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/math"
)

func noConfirm(t *testing.T) confirmFunc {
	return func(n int64) (bool, error) {
		t.Fatalf("unexpected confirmation for %d", n)
		return false, nil
	}
}

func TestEvaluate(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := evaluate(&buf, "5", config.Default(), math.NewCalculator(), noConfirm(t))
	require.NoError(t, err)
	require.Equal(t, "5! = 120\n", buf.String())
}

func TestEvaluateRejectsInput(t *testing.T) {
	calc := math.NewCalculator()

	for _, input := range []string{"2+3", "abc", "5.5", "__import__('os')"} {
		var buf bytes.Buffer
		err := evaluate(&buf, input, config.Default(), calc, noConfirm(t))
		require.Error(t, err, input)
		require.True(t, errors.Is(err, math.ErrNotInteger), input)
		require.Empty(t, buf.String())
	}

	err := evaluate(&bytes.Buffer{}, "-1", config.Default(), calc, noConfirm(t))
	require.True(t, errors.Is(err, math.ErrInvalidArgument))
}

func TestEvaluateConfirmation(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := config.Default()
	cfg.ConfirmAbove = 3

	var asked []int64
	decline := func(n int64) (bool, error) {
		asked = append(asked, n)
		return false, nil
	}

	var buf bytes.Buffer
	require.NoError(t, evaluate(&buf, "4", cfg, math.NewCalculator(), decline))
	require.Equal(t, []int64{4}, asked)
	require.Contains(t, buf.String(), "skipped")
	require.NotContains(t, buf.String(), "24")

	accept := func(int64) (bool, error) { return true, nil }
	buf.Reset()
	require.NoError(t, evaluate(&buf, "4", cfg, math.NewCalculator(), accept))
	require.True(t, strings.HasSuffix(buf.String(), "4! = 24\n"))

	failing := func(int64) (bool, error) { return false, errors.New("tty closed") }
	require.Error(t, evaluate(&buf, "4", cfg, math.NewCalculator(), failing))
}
