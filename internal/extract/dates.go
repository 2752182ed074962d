package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/talentsift/talentsift/constants"
)

type category int

const (
	categoryNone category = iota
	categoryInternship
	categoryExperience
	categoryFellowship
)

// classify assigns a section heading to at most one category. Keyword sets
// are checked in order (internship, experience, fellowship) and the first
// match wins, so a heading matching two sets goes to the earlier one.
// Headings matching none contribute no dates.
func classify(heading string) category {
	h := strings.ToLower(heading)
	for _, k := range constants.InternshipKeywords {
		if strings.Contains(h, k) {
			return categoryInternship
		}
	}
	for _, k := range constants.ExperienceKeywords {
		if strings.Contains(h, k) {
			return categoryExperience
		}
	}
	for _, k := range constants.FellowshipKeywords {
		if strings.Contains(h, k) {
			return categoryFellowship
		}
	}
	return categoryNone
}

// DateRangesFrom classifies each section and collects every date-range match
// from every pattern that fires; patterns are not mutually exclusive, so one
// span of text can surface through several of them. The literal word
// "present" in a match is replaced with the current calendar year, and any
// match that is then exactly a bare four-digit year is discarded.
func DateRangesFrom(sections []Section, now time.Time) DateRanges {
	year := strconv.Itoa(now.Year())
	dr := DateRanges{
		Internship: make([]string, 0),
		Experience: make([]string, 0),
		Fellowship: make([]string, 0),
	}
	for _, sec := range sections {
		cat := classify(sec.Heading)
		if cat == categoryNone {
			continue
		}
		var kept []string
		for _, pat := range constants.DatePatterns {
			for _, m := range pat.FindAllString(sec.Content, -1) {
				m = strings.ReplaceAll(m, "present", year)
				m = strings.ReplaceAll(m, "Present", year)
				if isBareYear(m) {
					continue
				}
				kept = append(kept, m)
			}
		}
		switch cat {
		case categoryInternship:
			dr.Internship = append(dr.Internship, kept...)
		case categoryExperience:
			dr.Experience = append(dr.Experience, kept...)
		case categoryFellowship:
			dr.Fellowship = append(dr.Fellowship, kept...)
		}
	}
	return dr
}

func isBareYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
