package math

import "math/big"

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/vadiminshakov/factorial/math Observer

// Observer is notified after every computation made through a Calculator.
// result is nil when err is set.
type Observer interface {
	Observe(n int64, result *big.Int, err error)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(n int64, result *big.Int, err error)

func (f ObserverFunc) Observe(n int64, result *big.Int, err error) {
	f(n, result, err)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithObserver attaches o to the calculator. A nil observer is ignored.
func WithObserver(o Observer) Option {
	if f, ok := o.(ObserverFunc); ok && f == nil {
		o = nil
	}
	return func(c *Calculator) {
		c.observer = o
	}
}

// Calculator wraps Factorial with an optional observer.
// It holds no mutable state and may be shared between goroutines
// as long as the observer itself is safe for concurrent use.
type Calculator struct {
	observer Observer
}

// NewCalculator creates a calculator configured by opts.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Factorial computes n! and reports the outcome to the observer.
func (c *Calculator) Factorial(n int64) (*big.Int, error) {
	result, err := Factorial(n)
	if c.observer != nil {
		c.observer.Observe(n, result, err)
	}
	return result, err
}
