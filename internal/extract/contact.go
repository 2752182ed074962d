package extract

import (
	"github.com/talentsift/talentsift/constants"
)

// Emails returns all non-overlapping email matches in document order.
func Emails(text string) []string {
	return constants.EmailPattern.FindAllString(text, -1)
}

// Phones returns all non-overlapping phone matches in document order.
func Phones(text string) []string {
	return constants.PhonePattern.FindAllString(text, -1)
}

// Contacts applies both contact grammars over the full text.
func Contacts(text string) ContactFields {
	return ContactFields{
		Emails: Emails(text),
		Phones: Phones(text),
	}
}
