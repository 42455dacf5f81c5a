package exporter

import (
	"fmt"
	"strconv"
)

// formatProportion formats a digit proportion with six decimal places so
// small deviations survive the round trip through CSV
func formatProportion(f float64) string {
	return fmt.Sprintf("%.6f", f)
}

// formatStatistic formats chi-square and MAD values with four decimal places
func formatStatistic(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatAmount formats a monetary aggregate with two decimal places
func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an integer for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}
