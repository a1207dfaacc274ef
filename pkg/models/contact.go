package models

import "strings"

// Contact is a single notification target: a telegram chat id or an email
// address, optionally tagged with a relation label ("mother", "doctor").
type Contact struct {
	Identifier    string `json:"identifier"`
	RelationLabel string `json:"relation_label,omitempty"`
}

// EncodeContact renders the delimited "identifier:relation" wire form. The
// delimited encoding exists only for compatibility with the stored rows and
// must not leak past this pair of functions. An unlabeled identifier that
// itself contains the delimiter gets a trailing delimiter so the decode split
// stays unambiguous; relation labels must not contain the delimiter.
func EncodeContact(c Contact) string {
	if c.RelationLabel == "" {
		if strings.Contains(c.Identifier, ":") {
			return c.Identifier + ":"
		}
		return c.Identifier
	}
	return c.Identifier + ":" + c.RelationLabel
}

func DecodeContact(s string) Contact {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return Contact{Identifier: s}
	}
	return Contact{
		Identifier:    s[:idx],
		RelationLabel: s[idx+1:],
	}
}

func EncodeContacts(contacts []Contact) []string {
	encoded := make([]string, len(contacts))
	for i, c := range contacts {
		encoded[i] = EncodeContact(c)
	}
	return encoded
}

func DecodeContacts(encoded []string) []Contact {
	contacts := make([]Contact, len(encoded))
	for i, s := range encoded {
		contacts[i] = DecodeContact(s)
	}
	return contacts
}
