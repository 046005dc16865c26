package metadata

import (
	"regexp"
	"strings"
)

const (
	DefaultTitle   = "Job Position"
	DefaultCompany = "Company"
)

var (
	titleRe   = regexp.MustCompile(`(?i)(?:position|role|job title)[:\s]+([^\n]+)`)
	companyRe = regexp.MustCompile(`(?i)(?:company|about us)[:\s]+([^\n]+)`)
)

type Metadata struct {
	Title   string
	Company string
}

// Extract never fails; unmatched fields fall back to the defaults.
func Extract(text string) Metadata {
	return Metadata{
		Title:   firstCapture(titleRe, text, DefaultTitle),
		Company: firstCapture(companyRe, text, DefaultCompany),
	}
}

func Title(text string) string {
	return firstCapture(titleRe, text, DefaultTitle)
}

func Company(text string) string {
	return firstCapture(companyRe, text, DefaultCompany)
}

func firstCapture(re *regexp.Regexp, text, fallback string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return fallback
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return fallback
	}
	return v
}
