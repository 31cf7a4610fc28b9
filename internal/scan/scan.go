// Package scan implements the stylesheet scanning heuristic: a regexp pass
// over raw stylesheet text that flags suspiciously large literal z-index
// values. It does not parse CSS syntactically and does not resolve cascade
// or specificity; it only looks at decimal literals.
package scan

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// pattern matches a z-index declaration with a bare decimal literal.
// Negative and fractional literals (z-index: -1, z-index: 1.5e3) are
// deliberately not matched.
var pattern = regexp.MustCompile(`z-index\s*:\s*(\d+)`)

// Severity classifies a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeveritySevere
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// Finding flags one literal stacking value in the scanned text.
type Finding struct {
	// Value is the literal z-index value that was matched.
	Value int
	// Severity is warning for values above the warn threshold and severe
	// for values above the severe threshold.
	Severity Severity
	// Line is the 1-based line of the match in the scanned text.
	Line int
}

// Thresholds holds the classification cut-offs. Values above Severe are
// severe findings; values above Warn (and at most Severe) are warnings;
// everything else passes.
type Thresholds struct {
	Warn   int
	Severe int
}

// DefaultThresholds returns the standard cut-offs: warn above 1000,
// severe above 9999.
func DefaultThresholds() Thresholds {
	return Thresholds{Warn: 1000, Severe: 9999}
}

// Scan returns the findings for text using the default thresholds, in
// document order. It is a pure function of its input.
func Scan(text string) []Finding {
	return ScanWithThresholds(text, DefaultThresholds())
}

// ScanWithThresholds scans text with caller-supplied cut-offs.
func ScanWithThresholds(text string, t Thresholds) []Finding {
	findings := make([]Finding, 0)
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		literal := text[m[2]:m[3]]
		value, err := strconv.Atoi(literal)
		if err != nil {
			// The submatch is digits-only, so the only possible failure
			// is range overflow; Atoi clamps the value to MaxInt, which
			// is far above any severe threshold.
			if !errors.Is(err, strconv.ErrRange) {
				continue
			}
		}

		switch {
		case value > t.Severe:
			findings = append(findings, Finding{
				Value:    value,
				Severity: SeveritySevere,
				Line:     lineOf(text, m[0]),
			})
		case value > t.Warn:
			findings = append(findings, Finding{
				Value:    value,
				Severity: SeverityWarning,
				Line:     lineOf(text, m[0]),
			})
		}
	}
	return findings
}

// lineOf returns the 1-based line number of byte offset pos in text.
func lineOf(text string, pos int) int {
	return 1 + strings.Count(text[:pos], "\n")
}
