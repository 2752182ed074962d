package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	text := "Experience\nDid stuff\nEducation\nBA degree"

	got := Sections(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Experience", got[0].Heading)
	assert.Equal(t, "Did stuff", got[0].Content)
	assert.Equal(t, "Education", got[1].Heading)
	assert.Equal(t, "BA degree", got[1].Content)
}

func TestSectionsLongestHeadingWins(t *testing.T) {
	got := Sections("Work Experience\nBuilt things")
	require.Len(t, got, 1)
	assert.Equal(t, "Work Experience", got[0].Heading)
	assert.Equal(t, "Built things", got[0].Content)
}

func TestSectionsAdjacentHeadings(t *testing.T) {
	got := Sections("Skills\nEducation\nBA degree")
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Content)
	assert.Equal(t, "BA degree", got[1].Content)
}

func TestSectionsHeadingMustStartLine(t *testing.T) {
	got := Sections("My relevant experience is broad")
	assert.Empty(t, got)
}

func TestSectionsNoHeadings(t *testing.T) {
	assert.Empty(t, Sections("just a paragraph of text"))
}
