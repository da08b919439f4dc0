package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"os/signal"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/terminal"
	"github.com/vadiminshakov/factorial/ui"
)

const version = "v0.1.0"

func main() {
	var (
		value       = flag.String("n", "", "Compute the factorial of this integer")
		interactive = flag.Bool("i", false, "Start an interactive prompt")
		headless    = flag.Bool("headless", false, "Read integers from stdin, one per line")
		setup       = flag.Bool("setup", false, "Run the configuration wizard")
		verbose     = flag.Bool("verbose", false, "Log every computation")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("factorial " + version)
		os.Exit(0)
	}

	cfg, err := loadConfig(*setup)
	if err != nil {
		log.Fatal(ui.Error("failed to load configuration: " + err.Error()))
	}
	if *verbose {
		cfg.Verbose = true
	}

	var opts []math.Option
	if cfg.Verbose {
		opts = append(opts, math.WithObserver(logObserver(log.New(os.Stderr, "", log.LstdFlags))))
	}
	calc := math.NewCalculator(opts...)
	tools.Register("factorial", tools.FactorialTool(calc))

	switch {
	case *headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := terminal.RunHeadless(ctx, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	case *interactive:
		if err := terminal.RunTerminal(cfg, calc); err != nil {
			log.Fatal(err)
		}
	default:
		input := *value
		if input == "" {
			input = fmt.Sprint(cfg.DemoValue)
		}
		if err := run(os.Stdout, calc, input); err != nil {
			fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
			os.Exit(1)
		}
	}
}

// loadConfig returns the stored configuration, or defaults when none exists.
func loadConfig(setup bool) (config.Config, error) {
	if setup {
		return config.InteractiveSetup()
	}

	cfg, err := config.LoadConfigFile()
	if os.IsNotExist(err) {
		return config.Default(), nil
	}
	return cfg, err
}

// run computes the factorial of input and prints it in the demo format.
func run(w io.Writer, calc *math.Calculator, input string) error {
	n, err := math.ParseArgument(input)
	if err != nil {
		return err
	}

	result, err := calc.Factorial(n)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Factorial of %d is %s\n", n, result)
	return nil
}

func logObserver(logger *log.Logger) math.ObserverFunc {
	return func(n int64, result *big.Int, err error) {
		if err != nil {
			logger.Printf("factorial(%d) failed: %v", n, err)
			return
		}
		logger.Printf("factorial(%d) computed, %d digits", n, len(result.String()))
	}
}
