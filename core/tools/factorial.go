package tools

import (
	"encoding/json"
	"fmt"
	gomath "math"

	"github.com/vadiminshakov/factorial/math"
)

func init() {
	Register("factorial", factorial)
}

var factorial = FactorialTool(math.NewCalculator())

// FactorialTool returns a tool computing n! for the "n" argument through calc,
// so calc's observer sees every call. Strings are parsed strictly as base-10
// integers and never evaluated.
func FactorialTool(calc *math.Calculator) ToolFunc {
	return func(args map[string]interface{}) (string, error) {
		raw, ok := args["n"]
		if !ok {
			return "", fmt.Errorf("parameter 'n' is required")
		}

		n, err := toInt64(raw)
		if err != nil {
			return "", err
		}

		result, err := calc.Factorial(n)
		if err != nil {
			return "", err
		}

		return result.String(), nil
	}
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case string:
		return math.ParseArgument(n)
	case json.Number:
		return math.ParseArgument(n.String())
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		// JSON decoding yields float64 for every number
		if n != gomath.Trunc(n) || n < gomath.MinInt64 || n >= gomath.MaxInt64 {
			return 0, fmt.Errorf("parameter 'n' must be an integer, got %v", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("parameter 'n' must be an integer, got %T", v)
	}
}
