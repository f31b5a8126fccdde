package ui

import (
	"fmt"
	"strconv"
	"strings"

	"pathviz/internal/core"
	"pathviz/internal/driver"
)

// formatFloat picks a precision from the control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// AlgorithmLine renders the selected algorithm and the number keys that pick
// each one.
func AlgorithmLine(selected driver.Algorithm) string {
	keys := make([]string, len(driver.Algorithms))
	for i, a := range driver.Algorithms {
		label := a.Label
		if a.Key == "dijkstra" {
			label = "Dij"
		}
		keys[i] = fmt.Sprintf("%d:%s", i+1, label)
	}
	return fmt.Sprintf("Algorithm: %s  [%s]", selected.Label, strings.Join(keys, " "))
}

// StatsLine summarizes a run for the status bar.
func StatsLine(st driver.Stats) string {
	line := fmt.Sprintf("advances %d  open %d  closed %d  path %d", st.Advances, st.Open, st.Closed, st.Path)
	if st.Length > 0 {
		line += fmt.Sprintf("  length %.2f", st.Length)
	}
	return line
}
