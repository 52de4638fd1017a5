// Package demo produces canned tutoring answers when the remote chat API is
// unavailable or unconfigured. Generation is pure: no I/O, no randomness, so
// the same (question, profile) pair always yields the same text.
package demo

import (
	"strings"

	"ai-tutor-be/pkg/store"
)

// AgeBand controls answer complexity, derived from the student's class level.
type AgeBand string

const (
	BandPrimary   AgeBand = "primary"
	BandSecondary AgeBand = "secondary"
	BandSenior    AgeBand = "senior"
	BandUnknown   AgeBand = "unknown"
)

type topic struct {
	name string
	// exact keywords matched against whitespace-split words of the question
	words []string
	// phrase keywords matched as substrings of the lowered question
	phrases []string
	answers map[AgeBand]string
}

type Responder struct {
	topics []topic
}

func NewResponder() *Responder {
	// Priority order is fixed: first matching topic wins.
	return &Responder{
		topics: []topic{
			{
				name:    "ai",
				words:   []string{"ai", "ml"},
				phrases: []string{"artificial intelligence", "machine learning", "neural", "robot", "chatbot"},
				answers: aiAnswers,
			},
			{
				name:    "photosynthesis",
				words:   nil,
				phrases: []string{"photosynthesis", "chlorophyll", "how plants make food"},
				answers: photosynthesisAnswers,
			},
			{
				name:    "mathematics",
				words:   []string{"math", "maths"},
				phrases: []string{"mathematics", "algebra", "geometry", "equation", "arithmetic", "fraction"},
				answers: mathAnswers,
			},
			{
				name:    "science",
				words:   nil,
				phrases: []string{"science", "physics", "chemistry", "biology", "experiment"},
				answers: scienceAnswers,
			},
		},
	}
}

// Generate returns a canned answer for the question, selected by topic
// keywords (fixed priority, first match wins) and by the student's age band.
func (r *Responder) Generate(question string, profile *store.StudentProfile) string {
	lowered := strings.ToLower(question)
	words := strings.Fields(lowered)

	band := BandUnknown
	if profile != nil {
		band = DeriveAgeBand(profile.ClassLevel)
	}

	for _, t := range r.topics {
		if !matches(t, lowered, words) {
			continue
		}
		if answer, ok := t.answers[band]; ok {
			return answer
		}
		return genericAnswer
	}
	return genericAnswer
}

func matches(t topic, lowered string, words []string) bool {
	for _, w := range t.words {
		for _, qw := range words {
			if strings.Trim(qw, ".,!?;:\"'()") == w {
				return true
			}
		}
	}
	for _, p := range t.phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// DeriveAgeBand maps a free-form class level ("Class 3", "8", "12th", "plus
// two", "primary") onto an age band. Unrecognized levels ("MBA") map to
// BandUnknown, which selects the generic fallback text.
func DeriveAgeBand(classLevel string) AgeBand {
	lowered := strings.ToLower(classLevel)

	if n, ok := firstNumber(lowered); ok {
		switch {
		case n >= 1 && n <= 5:
			return BandPrimary
		case n >= 6 && n <= 10:
			return BandSecondary
		case n == 11 || n == 12:
			return BandSenior
		}
		return BandUnknown
	}

	switch {
	case strings.Contains(lowered, "primary"):
		return BandPrimary
	case strings.Contains(lowered, "secondary"):
		return BandSecondary
	case strings.Contains(lowered, "senior"), strings.Contains(lowered, "plus"):
		return BandSenior
	}
	return BandUnknown
}

// firstNumber extracts the first run of digits from s.
func firstNumber(s string) (int, bool) {
	n := 0
	found := false
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
