package main

import (
	"fmt"
	"os"
	"strings"
)

// Tri-state switch shared by --ui and --color.
type triMode string

const (
	modeAuto triMode = "auto"
	modeOn   triMode = "on"
	modeOff  triMode = "off"
)

func readTriMode(flag, value string) (triMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return modeAuto, nil
	case "on":
		return modeOn, nil
	case "off":
		return modeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// resolve collapses auto into a concrete answer based on whether dst is a
// terminal.
func (m triMode) resolve(dst *os.File) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(dst)
	}
}
