package llm

import (
	"fmt"
	"regexp"
	"strconv"
)

// percentPattern matches percentage-shaped tokens such as "73%" or "7.5 %".
var percentPattern = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)\s*%`)

// ExtractLastPercent returns the rightmost percentage value in the text.
// Prompts ask the model to close with a "Probability: XX%" line, but any
// trailing percentage token counts; earlier occurrences are ignored.
func ExtractLastPercent(text string) (float64, error) {
	matches := percentPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no percentage found in response")
	}

	raw := matches[len(matches)-1][1]
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing percentage %q: %w", raw, err)
	}

	if value > 100 {
		return 0, fmt.Errorf("percentage %v out of range", value)
	}

	return value, nil
}
