// Package ui holds the colored terminal output helpers for the
// interactive shell.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	red    = color.New(color.FgRed)
)

// Header prints a formatted section header
func Header(text string) {
	line := strings.Repeat("=", 44)
	cyan.Printf("\n%s\n%s\n%s\n", line, text, line)
}

// Success prints a success message
func Success(format string, args ...any) {
	green.Printf("  ✓ "+format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...any) {
	yellow.Printf("  ⚠ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...any) {
	red.Printf("Error: "+format+"\n", args...)
}

// Row prints one aligned two-column report row: a label and an amount.
func Row(label, amount string) {
	fmt.Printf("  %-28s %12s\n", label, amount)
}

// Line prints one plain line.
func Line(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
