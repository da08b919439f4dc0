package ui

import (
	"os"
	"runtime"
)

// ANSI Color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"

	colorBrightRed    = "\033[91m"
	colorBrightGreen  = "\033[92m"
	colorBrightYellow = "\033[93m"
	colorBrightBlue   = "\033[94m"
	colorBrightCyan   = "\033[96m"
	colorBrightWhite  = "\033[97m"
)

// Colorize wraps text in the given ANSI sequence unless colours are disabled
// (Windows consoles or NO_COLOR set).
func Colorize(text, color string) string {
	if runtime.GOOS == "windows" || os.Getenv("NO_COLOR") != "" {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string    { return Colorize(text, colorBrightRed) }
func BrightGreen(text string) string  { return Colorize(text, colorBrightGreen) }
func BrightYellow(text string) string { return Colorize(text, colorBrightYellow) }
func BrightBlue(text string) string   { return Colorize(text, colorBrightBlue) }
func BrightCyan(text string) string   { return Colorize(text, colorBrightCyan) }
func BrightWhite(text string) string  { return Colorize(text, colorBrightWhite) }

func Bold(text string) string { return Colorize(text, colorBold) }
func Dim(text string) string  { return Colorize(text, colorDim) }

// Shortcuts for common message types
func Success(text string) string { return BrightGreen("✅ " + text) }
func Error(text string) string   { return BrightRed("❌ " + text) }
func Warning(text string) string { return BrightYellow("⚠️  " + text) }
func Info(text string) string    { return BrightBlue("ℹ️  " + text) }
