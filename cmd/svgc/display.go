package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// useLineNumbers reports whether text written to w should be numbered:
// always when forced, otherwise only when w is a terminal.
func useLineNumbers(w io.Writer, forced bool) bool {
	if forced {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// display writes text followed by a newline, numbering lines when requested.
func display(w io.Writer, text string, numbered bool) error {
	if !numbered {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	bw := bufio.NewWriter(w)
	lines := strings.Split(text, "\n")
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		fmt.Fprintf(bw, "%*d  %s\n", width, i+1, line)
	}
	return bw.Flush()
}
