package bot

import (
	"fmt"
	"time"
)

const noResearchPlaceholder = "No research conducted"

const binaryPromptTemplate = `You are a careful forecaster answering a binary prediction question.

Question: %s
Current Date: %s
Research: %s

Analyze and give:
1. Key factors affecting the outcome
2. The most likely outcome (0-100%% probability)
3. A final line in the exact format "Probability: XX%%"`

func buildBinaryPrompt(questionText string, now time.Time, research string) string {
	if research == "" {
		research = noResearchPlaceholder
	}
	return fmt.Sprintf(binaryPromptTemplate, questionText, now.Format("2006-01-02"), research)
}
