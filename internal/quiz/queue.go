package quiz

import (
	"strings"
	"sync"
	"unicode"
)

// Queue is the FIFO work list of generated-but-unanswered questions, plus the
// running correct/wrong counters for the session. It is process-lifetime only:
// a restart resets both the pending questions and the score.
type Queue struct {
	mu        sync.Mutex
	questions []Question
	correct   int
	wrong     int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Fill replaces the pending questions with a fresh batch and resets nothing
// else; the score counters keep accumulating across batches.
func (q *Queue) Fill(questions []Question) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.questions = append([]Question(nil), questions...)
}

// Len returns the number of pending questions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.questions)
}

// Peek returns the head question without removing it.
// ok is false when the queue is empty.
func (q *Queue) Peek() (Question, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.questions) == 0 {
		return Question{}, false
	}
	return q.questions[0], true
}

// PopNext removes and returns the head of the pending queue. An empty queue
// signals "all questions answered" via ok=false, not an error.
func (q *Queue) PopNext() (Question, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.questions) == 0 {
		return Question{}, false
	}
	head := q.questions[0]
	q.questions = q.questions[1:]
	return head, true
}

// AnswerResult reports the outcome of answering the head question.
type AnswerResult struct {
	Correct       bool
	CorrectOption string // letter of the correct option
	Explanation   string // text of the correct option
	Remaining     int
}

// CheckAnswer compares the selected letter against the head question's correct
// option by first-character match, tolerating trailing annotation text in the
// stored correct answer (e.g. "A (see page 3)"). The head is popped and
// exactly one of the correct/wrong counters is incremented regardless of the
// outcome. ok is false when the queue is empty.
func (q *Queue) CheckAnswer(selected string) (AnswerResult, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.questions) == 0 {
		return AnswerResult{}, false
	}

	head := q.questions[0]
	q.questions = q.questions[1:]

	correctLetter := firstLetter(head.CorrectAnswer)
	isCorrect := correctLetter != "" && strings.EqualFold(firstLetter(selected), correctLetter)

	if isCorrect {
		q.correct++
	} else {
		q.wrong++
	}

	explanation := head.Explanation
	for _, option := range head.Options {
		if strings.EqualFold(option.Key, correctLetter) {
			explanation = option.Text
			break
		}
	}

	return AnswerResult{
		Correct:       isCorrect,
		CorrectOption: strings.ToUpper(correctLetter),
		Explanation:   explanation,
		Remaining:     len(q.questions),
	}, true
}

// Score returns the running correct/wrong counters.
func (q *Queue) Score() (correct, wrong int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.correct, q.wrong
}

// firstLetter returns the first letter of s as a string, or "" if s does not
// start with a letter after trimming whitespace.
func firstLetter(s string) string {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if unicode.IsLetter(r) {
			return string(r)
		}
		return ""
	}
	return ""
}
