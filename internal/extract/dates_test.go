package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestDateRangesPresentSubstitution(t *testing.T) {
	sections := []Section{
		{Heading: "Work Experience", Content: "Jan 2019 – present"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Contains(t, got.Experience, "Jan 2019 – 2024")
	assert.Empty(t, got.Internship)
	assert.Empty(t, got.Fellowship)
}

func TestDateRangesBareYearDropped(t *testing.T) {
	sections := []Section{
		{Heading: "Experience", Content: "2021"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Empty(t, got.Experience)
}

func TestDateRangesMultiTokenRangeKept(t *testing.T) {
	sections := []Section{
		{Heading: "Experience", Content: "2018 - 2020"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Contains(t, got.Experience, "2018 - 2020")
}

func TestDateRangesOverlappingPatternsNotDeduplicated(t *testing.T) {
	// A full range and the partial month-year matches it contains all
	// surface; patterns are not mutually exclusive by design.
	sections := []Section{
		{Heading: "Experience", Content: "Jun 2017 - Aug 2018"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Contains(t, got.Experience, "Jun 2017 - Aug 2018")
	assert.Contains(t, got.Experience, "Jun 2017")
	assert.Contains(t, got.Experience, "Aug 2018")
}

func TestDateRangesCategoryPriority(t *testing.T) {
	// "Internship Experience" matches both keyword sets; internship is
	// checked first and wins.
	sections := []Section{
		{Heading: "Internship Experience", Content: "May 2022 to Aug 2022"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.NotEmpty(t, got.Internship)
	assert.Empty(t, got.Experience)
}

func TestDateRangesFellowship(t *testing.T) {
	sections := []Section{
		{Heading: "Fellowships", Content: "Sep 2020 - present"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Contains(t, got.Fellowship, "Sep 2020 - 2024")
}

func TestDateRangesUntrackedSectionSkipped(t *testing.T) {
	sections := []Section{
		{Heading: "Education", Content: "Jan 2015 - Dec 2018"},
	}
	got := DateRangesFrom(sections, fixedNow)
	assert.Empty(t, got.Internship)
	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Fellowship)
}

func TestDateRangesEmptySections(t *testing.T) {
	got := DateRangesFrom(nil, fixedNow)
	assert.Empty(t, got.Internship)
	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Fellowship)
}
