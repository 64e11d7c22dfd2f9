package utils

import (
	"net/url"
	"strings"
)

// DigitsOnly strips everything except decimal digits from a phone number.
func DigitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink builds a wa.me deep link for the given number. The message is
// optional; when present it is URL-encoded into the text parameter.
func WhatsAppLink(number, message string) string {
	link := "https://wa.me/" + DigitsOnly(number)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// FirstName returns the first whitespace-separated token of a full name,
// or the given fallback when the name is blank.
func FirstName(fullName, fallback string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}
