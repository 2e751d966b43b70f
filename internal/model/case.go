package model

import "errors"

// CaseStatus is the lifecycle state of a rescue case.
type CaseStatus string

const (
	CaseStatusActive    CaseStatus = "active"
	CaseStatusRecovered CaseStatus = "recovered"
	CaseStatusClosed    CaseStatus = "closed"
)

// CaseFacts is the externally owned, read-only description of the case the
// conversation is about. The generator's free text must never be trusted for
// any of these fields; they arrive validated from the facts provider.
type CaseFacts struct {
	CaseID        string
	Name          string // animal's name
	Species       string
	Location      string
	Condition     string // short medical/situation description
	Status        CaseStatus
	GuardianID    string
	GuardianAlias string   // primary bank-transfer alias, may be empty
	AlternateFund string   // shared fallback fund alias
	SocialLinks   []string // public share links for the case
}

var (
	ErrCaseIDRequired    = errors.New("case facts: case id is required")
	ErrCaseStatusInvalid = errors.New("case facts: invalid status")
)

// Validate rejects malformed facts before they reach the pipeline.
func (c CaseFacts) Validate() error {
	if c.CaseID == "" {
		return ErrCaseIDRequired
	}
	switch c.Status {
	case CaseStatusActive, CaseStatusRecovered, CaseStatusClosed, "":
	default:
		return ErrCaseStatusInvalid
	}
	return nil
}

// HasGuardianAlias reports whether a primary alias can be disclosed.
func (c CaseFacts) HasGuardianAlias() bool { return c.GuardianAlias != "" }

// HasGuardianID reports whether guardian contact can be offered.
func (c CaseFacts) HasGuardianID() bool { return c.GuardianID != "" }

// HasSocialLinks reports whether share links exist for the case.
func (c CaseFacts) HasSocialLinks() bool { return len(c.SocialLinks) > 0 }

// FactTerms returns the concrete case facts the governor screens
// help-seeking responses for. Empty fields are skipped.
func (c CaseFacts) FactTerms() []string {
	terms := make([]string, 0, 4)
	for _, t := range []string{c.Name, c.Species, c.Location, c.Condition} {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
