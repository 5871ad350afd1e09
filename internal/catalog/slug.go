package catalog

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafe     = regexp.MustCompile(`[^a-z0-9-]`)
	dashes     = regexp.MustCompile(`-+`)
)

// Slug lowercases s and reduces it to hyphen-separated [a-z0-9] words.
func Slug(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = whitespace.ReplaceAllString(s, "-")
	s = unsafe.ReplaceAllString(s, "")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func CategoryURL(category string) string {
	return "/calculators/" + Slug(category)
}

func CalculatorURL(category, calculator string) string {
	return "/calculators/" + Slug(category) + "/" + Slug(calculator)
}
