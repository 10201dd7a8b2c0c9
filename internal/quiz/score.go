package quiz

import "fmt"

// FormatScore renders a score percentage with two decimals, e.g. "66.67%".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f%%", score)
}
