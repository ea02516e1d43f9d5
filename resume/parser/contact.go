package parser

import (
	"regexp"

	"resume-matcher/resume/model"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9\-_%]+)`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9\-_]+)`)
)

// ExtractContact scans the whole document for contact details. Fields
// with no match stay empty and are omitted from JSON output.
func ExtractContact(text string) model.Contact {
	var contact model.Contact
	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	if phone := phonePattern.FindString(text); phone != "" {
		contact.Phone = phone
	}
	if m := linkedinPattern.FindStringSubmatch(text); m != nil {
		contact.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := githubPattern.FindStringSubmatch(text); m != nil {
		contact.GitHub = "https://github.com/" + m[1]
	}
	return contact
}
