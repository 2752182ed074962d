// Package extract holds the rule-based field extractors that turn raw resume
// text into structured candidate information. Every extractor is best-effort:
// absence of a match is a valid empty result, never an error. Only the
// tagging collaborator can fail, and that failure is propagated.
package extract

// Sentinel values reported when a field could not be extracted.
const (
	NoEmailFound = "No email found"
	NoPhoneFound = "No phone number found"
	NoNameFound  = "No name found"
)

// ContactFields holds every email and phone match in document order. The
// first of each is treated as canonical downstream.
type ContactFields struct {
	Emails []string
	Phones []string
}

// Empty reports whether no contact signal was found at all; the orchestrator
// uses this to decide on the OCR fallback.
func (c ContactFields) Empty() bool {
	return len(c.Emails) == 0 && len(c.Phones) == 0
}

// NameCandidate is a contiguous two-token proper-noun phrase with its
// position in the raw text. Duplicates are permitted.
type NameCandidate struct {
	Text string
	Pos  int
}

// Section is a (heading, content) pair produced by heading-anchored
// segmentation. Content may be empty when two headings are adjacent.
type Section struct {
	Heading string
	Content string
}

// DateRanges holds the raw matched date-range strings per tracked category.
type DateRanges struct {
	Internship []string
	Experience []string
	Fellowship []string
}

// Result is the JSON-shaped record returned for one document.
type Result struct {
	EmailID         string   `json:"email_id"`
	PhoneNumber     string   `json:"phone_number"`
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	InternshipDates []string `json:"internship_dates"`
	ExperienceDates []string `json:"experience_dates"`
	FellowshipDates []string `json:"fellowship_dates"`
}
