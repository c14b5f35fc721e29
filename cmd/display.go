package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/calc"
)

var (
	valueLine   = color.New(color.FgGreen, color.Bold).SprintFunc()
	pendingLine = color.New(color.FgMagenta).SprintFunc()
	warnLine    = color.New(color.FgYellow).SprintFunc()
	errLine     = color.New(color.FgRed).SprintFunc()
)

// printLines prints calculator output, dimming lines still waiting on input.
func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		if strings.HasSuffix(l, calc.Placeholder) {
			fmt.Fprintln(w, pendingLine(l))
			continue
		}
		fmt.Fprintln(w, valueLine(l))
	}
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnLine("⚠ "+msg))
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}
