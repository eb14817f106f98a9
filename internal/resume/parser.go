package resume

import (
	"strings"
	"unicode"
)

// phoneDigitThreshold is the digit count at which a line counts as a phone number
// even without "(" or "-".
const phoneDigitThreshold = 10

// sectionKeywords lists header keywords in match priority; the first entry whose
// keyword appears in a lowercased line wins.
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionExperience, []string{"experience", "employment"}},
	{SectionEducation, []string{"education"}},
	{SectionSkills, []string{"skill"}},
	{SectionProjects, []string{"project"}},
	{SectionCertifications, []string{"certification", "certificate"}},
}

// ParseText scans text line by line and fills the contact fields of a new Record.
//
// The first line containing "@" becomes the email and the first line that looks like a
// phone number becomes the phone; both are stored as whole trimmed lines. If no name was
// found the trimmed first line of the input is used. Section headers are recognized but
// section content is not collected, so every list in the result is empty.
//
// ParseText never fails; any input, including "", yields a well-formed Record.
func ParseText(text string) *Record {
	record := NewRecord()
	lines := strings.Split(text, "\n")

	current := SectionNone
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if record.Personal.Email == "" && strings.Contains(line, "@") {
			record.Personal.Email = line
		}

		if record.Personal.Phone == "" && looksLikePhone(line) {
			record.Personal.Phone = line
		}

		if section, ok := DetectSection(line); ok {
			current = section
		}
	}
	_ = current // tracked for section attachment, which is not implemented

	if record.Personal.Name == "" {
		record.Personal.Name = strings.TrimSpace(lines[0])
	}

	return record
}

// DetectSection reports which section header keyword, if any, the line contains.
// Matching is case-insensitive and substring based.
func DetectSection(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, candidate := range sectionKeywords {
		for _, keyword := range candidate.keywords {
			if strings.Contains(lower, keyword) {
				return candidate.section, true
			}
		}
	}
	return SectionNone, false
}

// looksLikePhone reports whether line has at least one digit and either contains
// "(" or "-", or has phoneDigitThreshold or more digits.
func looksLikePhone(line string) bool {
	digits := countDigits(line)
	if digits == 0 {
		return false
	}
	return strings.ContainsAny(line, "(-") || digits >= phoneDigitThreshold
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
