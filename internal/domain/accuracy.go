package domain

import "math"

// AnswerCounter is a correct/total pair. total >= correct >= 0 always.
type AnswerCounter struct {
	CorrectAnswers int
	TotalQuestions int
}

// Percent returns the rounded accuracy of the counter.
func (c AnswerCounter) Percent() int {
	return AccuracyPercent(c.CorrectAnswers, c.TotalQuestions)
}

// SubjectAccuracy is the counter of one subject.
type SubjectAccuracy struct {
	Subject Subject
	AnswerCounter
}

// AccuracyPercent returns round(correct/total*100), 0 when total is 0,
// clamped to [0, 100].
func AccuracyPercent(correct, total int) int {
	if total <= 0 || correct <= 0 {
		return 0
	}
	if correct >= total {
		return 100
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
