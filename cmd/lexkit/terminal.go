package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// switchMode is the auto|on|off value shared by --color and --ui.
type switchMode uint8

const (
	switchAuto switchMode = iota
	switchOn
	switchOff
)

func (m switchMode) String() string {
	switch m {
	case switchOn:
		return "on"
	case switchOff:
		return "off"
	default:
		return "auto"
	}
}

// parseSwitch reads the value of --flag; an empty value means auto.
func parseSwitch(flag, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	default:
		return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// enabled resolves the switch for output going to f; auto asks the terminal.
func (m switchMode) enabled(f *os.File) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	default:
		return isTerminal(f)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
