package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ActivityType is the closed set of things that can grant XP.
type ActivityType string

const (
	ActivityTypeQuiz      ActivityType = "quiz"
	ActivityTypeAudit     ActivityType = "audit"
	ActivityTypeTax       ActivityType = "tax"
	ActivityTypeCaseLaw   ActivityType = "caselaw"
	ActivityTypeChallenge ActivityType = "challenge"
	ActivityTypeCheckIn   ActivityType = "checkin"
	ActivityTypeEvent     ActivityType = "event"
)

// AllActivityTypes lists every valid activity type in storage order.
var AllActivityTypes = []ActivityType{
	ActivityTypeQuiz, ActivityTypeAudit, ActivityTypeTax, ActivityTypeCaseLaw,
	ActivityTypeChallenge, ActivityTypeCheckIn, ActivityTypeEvent,
}

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeQuiz, ActivityTypeAudit, ActivityTypeTax, ActivityTypeCaseLaw,
		ActivityTypeChallenge, ActivityTypeCheckIn, ActivityTypeEvent:
		return true
	}
	return false
}

// RewardKind tells how the XP reward of an activity type is determined.
type RewardKind int

const (
	// RewardNone marks types that cannot be recorded as a learning activity.
	RewardNone RewardKind = iota
	// RewardFixed grants a configured flat amount.
	RewardFixed
	// RewardCatalog reads the reward from the content catalog.
	RewardCatalog
	// RewardExplicit takes the amount from the caller (addXp path).
	RewardExplicit
)

// RewardSource returns the reward capability of the activity type.
func (a ActivityType) RewardSource() RewardKind {
	switch a {
	case ActivityTypeQuiz:
		return RewardFixed
	case ActivityTypeAudit, ActivityTypeTax, ActivityTypeCaseLaw:
		return RewardCatalog
	case ActivityTypeChallenge, ActivityTypeEvent:
		return RewardExplicit
	}
	return RewardNone
}

// CountsAsSimulation reports whether completing the activity increments completed_simulations.
func (a ActivityType) CountsAsSimulation() bool {
	return a == ActivityTypeAudit || a == ActivityTypeTax
}

// Subject returns the accuracy subject tied to the activity type, if any.
func (a ActivityType) Subject() (Subject, bool) {
	switch a {
	case ActivityTypeAudit:
		return SubjectAudit, true
	case ActivityTypeTax:
		return SubjectTax, true
	case ActivityTypeCaseLaw:
		return SubjectCaseLaw, true
	}
	return "", false
}

// MaxReferenceIDLen is the stored length of activities.reference_id (runes).
const MaxReferenceIDLen = 120

// TruncateReference cuts a reference or source label to the stored length.
func TruncateReference(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxReferenceIDLen {
		return s
	}
	r := []rune(s)
	return string(r[:MaxReferenceIDLen])
}

// sourceKeywords is checked in order; the first match wins. Words match
// whole tokens of the label (a trailing "s" or "es" is allowed), so "tax"
// does not fire inside "syntax". Stems marked prefix also match German
// compounds such as "Steuerfall".
var sourceKeywords = []struct {
	words  []string
	prefix bool
	kind   ActivityType
}{
	{words: []string{"challenge"}, kind: ActivityTypeChallenge},
	{words: []string{"audit"}, kind: ActivityTypeAudit},
	{words: []string{"tax"}, kind: ActivityTypeTax},
	{words: []string{"steuer"}, prefix: true, kind: ActivityTypeTax},
	{words: []string{"caselaw"}, kind: ActivityTypeCaseLaw},
	{words: []string{"case", "law"}, kind: ActivityTypeCaseLaw},
	{words: []string{"urteil"}, prefix: true, kind: ActivityTypeCaseLaw},
}

// ActivityTypeFromSource derives the activity type of a free-form XP source
// label by keyword, defaulting to quiz.
func ActivityTypeFromSource(source string) ActivityType {
	tokens := strings.FieldsFunc(NormalizeLabel(source), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, k := range sourceKeywords {
		for i := 0; i+len(k.words) <= len(tokens); i++ {
			if matchWords(tokens[i:i+len(k.words)], k.words, k.prefix) {
				return k.kind
			}
		}
	}
	return ActivityTypeQuiz
}

func matchWords(tokens, words []string, prefix bool) bool {
	last := len(words) - 1
	for i, w := range words[:last] {
		if tokens[i] != w {
			return false
		}
	}
	tok, w := tokens[last], words[last]
	if prefix {
		return strings.HasPrefix(tok, w)
	}
	return tok == w || tok == w+"s" || tok == w+"es"
}

// Subject is a per-subject accuracy bucket.
type Subject string

const (
	SubjectAudit   Subject = "audit"
	SubjectTax     Subject = "tax"
	SubjectCaseLaw Subject = "caselaw"
)

func (s Subject) String() string { return string(s) }

func (s Subject) IsValid() bool {
	switch s {
	case SubjectAudit, SubjectTax, SubjectCaseLaw:
		return true
	}
	return false
}

// CheckInOutcome labels the result of a daily check-in attempt.
type CheckInOutcome string

const (
	CheckInWon  CheckInOutcome = "won"
	CheckInLost CheckInOutcome = "lost"
)

func (o CheckInOutcome) String() string { return string(o) }
