package constants

import (
	"regexp"
	"sort"
	"strings"
)

// Contact grammars.
var (
	EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	PhonePattern = regexp.MustCompile(`\(?\+?\d{0,2}\)?[- ]?\d{3}[- ]?\d{3}[- ]?\d{4}`)
)

const monthAlt = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// DatePatterns are the thirteen date-range grammars, in priority order.
// Every pattern that fires contributes its matches; overlapping matches
// from different patterns are all kept.
var DatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s*–\s*` + monthAlt + `\.?\s+\d{4}`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s*-\s*` + monthAlt + `\.?\s+\d{4}`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s+to\s+` + monthAlt + `\.?\s+\d{4}`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s*–\s*present\b`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s*-\s*present\b`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\s+to\s+present\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}/\d{4}\s*(?:to|[-–])\s*\d{1,2}/\d{4}`),
	regexp.MustCompile(`(?i)\b\d{1,2}/\d{4}\s*(?:to|[-–])\s*present\b`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s+to\s+(?:19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*[-–]\s*present\b`),
	regexp.MustCompile(`(?i)\b` + monthAlt + `\.?\s+\d{4}\b`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
}

// Section category keyword sets, checked in this priority order: a heading
// matching an internship keyword is internship even if it also matches an
// experience keyword.
var (
	InternshipKeywords = []string{"internship", "internships", "industrial training"}
	ExperienceKeywords = []string{"experience", "employment", "work history"}
	FellowshipKeywords = []string{"fellowship", "fellowships"}
)

// Headings is the controlled vocabulary of resume section titles used for
// heading-anchored segmentation.
var Headings = []string{
	"academic background",
	"academic projects",
	"accomplishments",
	"achievements",
	"activities",
	"additional information",
	"awards",
	"career objective",
	"career summary",
	"certifications",
	"contact",
	"core competencies",
	"courses",
	"courses attended",
	"declaration",
	"education",
	"employment",
	"employment history",
	"experience",
	"expertise",
	"extracurricular activities",
	"fellowship",
	"fellowships",
	"hobbies",
	"honors",
	"industrial training",
	"interests",
	"internship",
	"internships",
	"key skills",
	"languages",
	"leadership",
	"licenses",
	"memberships",
	"military service",
	"objective",
	"patents",
	"personal details",
	"personal profile",
	"positions of responsibility",
	"professional experience",
	"professional summary",
	"profile",
	"projects",
	"publications",
	"qualifications",
	"references",
	"research",
	"research experience",
	"seminars",
	"skills",
	"strengths",
	"summary",
	"teaching experience",
	"technical skills",
	"training",
	"volunteer experience",
	"volunteering",
	"work experience",
	"work history",
	"workshops",
}

// HeadingPattern matches any heading from the vocabulary at the start of a
// line, case-insensitively. Alternatives are ordered longest-first so that
// "work experience" wins over "experience" at the same position.
var HeadingPattern = buildHeadingPattern(Headings)

func buildHeadingPattern(headings []string) *regexp.Regexp {
	sorted := make([]string, len(headings))
	copy(sorted, headings)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, h := range sorted {
		quoted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`(?im)^(?:` + strings.Join(quoted, "|") + `)\b`)
}
