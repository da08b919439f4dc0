package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/math"
	"github.com/vadiminshakov/factorial/ui"
)

// confirmFunc asks the user whether n! should be computed.
type confirmFunc func(n int64) (bool, error)

// RunTerminal starts the interactive loop. Every line is parsed strictly as an
// integer before anything is computed.
func RunTerminal(cfg config.Config, calc *math.Calculator) error {
	repl, err := ui.NewREPL(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer repl.Close()
	repl.ShowWelcome()

	for {
		input, shouldExit := repl.ReadInput()
		if shouldExit {
			break
		}

		if input == "" {
			continue
		}

		if err := evaluate(os.Stdout, input, cfg, calc, promptConfirm); err != nil {
			ui.ShowError(os.Stdout, err)
		}
	}

	return nil
}

func evaluate(w io.Writer, input string, cfg config.Config, calc *math.Calculator, confirm confirmFunc) error {
	n, err := math.ParseArgument(input)
	if err != nil {
		return err
	}

	if cfg.NeedsConfirmation(n) {
		ok, err := confirm(n)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, ui.Info("skipped"))
			return nil
		}
	}

	var spinner *ui.Spinner
	if cfg.NeedsConfirmation(n) {
		spinner = ui.NewSpinner(w, fmt.Sprintf("computing %d!...", n))
		spinner.Start()
	}
	result, err := calc.Factorial(n)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, ui.FormatResult(n, result.String()))
	return nil
}

func promptConfirm(n int64) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%d! is large and may take a while. Continue", n),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
