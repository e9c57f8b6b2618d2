// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package confirm gates processing behind a user confirmation.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Proceed asks whether to continue. On a terminal a single keypress
// answers: ENTER proceeds, anything else cancels. Without a terminal it
// reads one line, where empty, "y", or "yes" proceeds.
func Proceed(in *os.File, out io.Writer) (bool, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Proceed with these settings?")
	fmt.Fprintln(out, "  press ENTER to continue, any other key to cancel")

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return proceedLine(in, out)
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return proceedLine(in, out)
	}
	defer term.Restore(fd, old)

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil {
		return false, err
	}
	term.Restore(fd, old)

	if buf[0] == '\r' || buf[0] == '\n' {
		fmt.Fprintln(out, "proceeding")
		return true, nil
	}
	fmt.Fprintln(out, "cancelled")
	return false, nil
}

// proceedLine is the non-interactive fallback. EOF with no input cancels.
func proceedLine(in io.Reader, out io.Writer) (bool, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out, "cancelled")
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		fmt.Fprintln(out, "proceeding")
		return true, nil
	}
	fmt.Fprintln(out, "cancelled")
	return false, nil
}
