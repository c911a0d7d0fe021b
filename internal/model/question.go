package model

type QuestionType string

const (
	QuestionBinary         QuestionType = "binary"
	QuestionNumeric        QuestionType = "numeric"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// Question is an open tournament question as listed by the platform.
// Immutable once fetched.
type Question struct {
	ID                int64
	Text              string
	Type              QuestionType
	AlreadyForecasted bool
}

// Prediction pairs a probability with the reasoning text that produced it.
// Probabilities are fractions in [0,1] everywhere past extraction.
type Prediction struct {
	Probability float64
	Reasoning   string
}
