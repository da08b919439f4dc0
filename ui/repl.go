package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// REPLCommands stores command history and provides REPL functionality
type REPLCommands struct {
	history  []string
	readline *readline.Instance
	out      io.Writer
}

// createReadline creates a new readline instance with standard configuration
func createReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

// NewREPL creates a new REPL interface persisting history to historyFile
func NewREPL(historyFile string) (*REPLCommands, error) {
	rl, err := createReadline(historyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &REPLCommands{
		history:  make([]string, 0),
		readline: rl,
		out:      os.Stdout,
	}, nil
}

// completer provides auto-completion for built-in commands
var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("clear"),
	readline.PcItem("history"),
	readline.PcItem("exit"),
)

// Close releases REPL resources
func (r *REPLCommands) Close() {
	if r.readline != nil {
		r.readline.Close()
	}
}

// ShowWelcome prints the welcome message
func (r *REPLCommands) ShowWelcome() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, BrightCyan("n! calculator"))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, Info("Enter a non-negative integer"))
	fmt.Fprintln(r.out, Dim("Available commands: help, clear, history, exit"))
	fmt.Fprintln(r.out)
}

// GetPrompt returns a styled prompt for user input
func (r *REPLCommands) GetPrompt() string {
	return fmt.Sprintf("%s %s ", BrightBlue("n"), BrightGreen("❯"))
}

// ReadInput reads user input and handles built-in commands.
// It returns the line to evaluate and whether the REPL should exit.
func (r *REPLCommands) ReadInput() (string, bool) {
	r.readline.SetPrompt(r.GetPrompt())

	line, err := r.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", false
		}
		// io.EOF or a broken terminal
		return "", true
	}

	return r.handle(line)
}

func (r *REPLCommands) handle(line string) (string, bool) {
	inputStr := strings.TrimSpace(line)

	if inputStr == "" {
		return "", false
	}

	r.history = append(r.history, inputStr)

	switch inputStr {
	case "exit", "quit":
		return "", true

	case "help":
		r.showHelp()
		return "", false

	case "clear":
		r.clear()
		return "", false

	case "history":
		r.showHistory()
		return "", false

	default:
		return inputStr, false
	}
}

// showHelp prints built-in command help
func (r *REPLCommands) showHelp() {
	helpText := `Enter a whole number n >= 0 to compute n!.
Input is read as a plain integer; expressions are rejected.

Commands:
  help     – show this help
  clear    – clear the screen
  history  – show input history
  exit     – quit the program`

	fmt.Fprintln(r.out, helpText)
}

// clear clears the terminal screen
func (r *REPLCommands) clear() {
	fmt.Fprint(r.out, "\033[2J\033[H")
}

// showHistory prints the last ten inputs
func (r *REPLCommands) showHistory() {
	fmt.Fprintln(r.out)
	if len(r.history) == 0 {
		fmt.Fprintln(r.out, Info("History is empty"))
		return
	}

	start := 0
	if len(r.history) > 10 {
		start = len(r.history) - 10
		fmt.Fprintln(r.out, Dim("... (showing last 10 entries)"))
	}

	for i := start; i < len(r.history); i++ {
		cmd := r.history[i]
		if len(cmd) > 60 {
			cmd = cmd[:57] + "..."
		}
		fmt.Fprintf(r.out, "%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), BrightWhite(cmd))
	}
	fmt.Fprintln(r.out)
}

// ShowError prints the error in a formatted style
func ShowError(w io.Writer, err error) {
	fmt.Fprintln(w, Error(err.Error()))
}
