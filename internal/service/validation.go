package service

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/octobees/lead-parser/internal/entity"
	"github.com/octobees/lead-parser/internal/service/extract"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup

	phoneExtensionPattern = regexp.MustCompile(`(?i)(?:ext|x|extension)[\s.:#-]*\d+\s*$`)

	commentsRulePattern    = regexp.MustCompile(`(?m)^\s*[-_]{3,}\s*$`)
	commentsFooterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)\b(confidential(ity)? notice|this e-?mail.*confidential|intended only for the named recipient|do not disseminate|if you have received this.*in error).*`),
		regexp.MustCompile(`(?is)\b(terms of use and disclaimers apply).*`),
		regexp.MustCompile(`(?is)\b(be aware! online banking fraud).*`),
	}
	trailingSpacePattern = regexp.MustCompile(`[ \t]+\n`)
	blankLinesPattern    = regexp.MustCompile(`\n{2,}`)
)

const (
	defaultPhoneRegion = "US"
	notDisclosed       = "not disclosed"
)

// LeadNormalizer cleans raw extracted values into the canonical lead representation.
type LeadNormalizer struct {
	DefaultRegion string
}

// NewLeadNormalizer builds a normalizer that resolves national phone numbers in defaultRegion.
func NewLeadNormalizer(defaultRegion string) *LeadNormalizer {
	region := strings.ToUpper(strings.TrimSpace(defaultRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &LeadNormalizer{DefaultRegion: region}
}

// Normalize returns a copy of fields with every value cleaned. Values that are withheld by the
// buyer or fail validation are dropped so that required-field checks report them as missing.
func (n *LeadNormalizer) Normalize(fields extract.Fields) extract.Fields {
	out := make(extract.Fields, len(fields))
	for field, raw := range fields {
		value := strings.TrimSpace(raw)
		if isNotDisclosed(value) {
			continue
		}
		switch field {
		case entity.FieldPhone:
			value = normalizePhone(value, n.DefaultRegion)
		case entity.FieldEmail:
			value = cleanEmail(value)
		case entity.FieldComments:
			value = cleanComments(value)
		}
		if value != "" {
			out[field] = value
		}
	}
	return out
}

func isNotDisclosed(value string) bool {
	lowered := strings.ToLower(strings.Trim(value, " \t()[]*.-"))
	return strings.HasPrefix(lowered, notDisclosed)
}

// normalizePhone formats raw as E.164, or returns "" when it is not a valid number.
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(phoneExtensionPattern.ReplaceAllString(raw, ""))
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "001"):
		digits = digits[3:]
	case len(digits) == 12 && strings.HasPrefix(digits, "01"):
		digits = digits[2:]
	case strings.HasPrefix(raw, "+"):
		digits = "+" + digits
	}
	if digits == "" || digits == "+" {
		return ""
	}

	number, err := phonenumbers.Parse(digits, region)
	if err == nil && phonenumbers.IsPossibleNumber(number) && phonenumbers.IsValidNumber(number) {
		return phonenumbers.Format(number, phonenumbers.E164)
	}
	if region == defaultPhoneRegion && !strings.HasPrefix(digits, "+") {
		return nanpDigits(digits)
	}
	return ""
}

// nanpDigits formats the trailing ten digits of a US number as +1 plus the national number,
// for numbers the metadata rejects (unassigned area codes, fictional 555 ranges).
func nanpDigits(digits string) string {
	switch {
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	case len(digits) >= 10:
		return "+1" + digits[len(digits)-10:]
	default:
		return ""
	}
}

// cleanEmail lower-cases raw and returns it when it is a syntactically valid address.
func cleanEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	email = strings.TrimPrefix(email, "mailto:")
	if email == "" || !emailPattern.MatchString(email) {
		return ""
	}
	_, domain, _ := strings.Cut(email, "@")
	if !isDomainValid(domain) {
		return ""
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return ""
	}
	return email
}

// cleanComments strips quoted replies, signatures and legal footers from a buyer message.
func cleanComments(raw string) string {
	if raw == "" {
		return ""
	}
	text := raw
	if loc := commentsRulePattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	for _, pattern := range commentsFooterPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = strings.ReplaceAll(text, "\r", "")
	text = trailingSpacePattern.ReplaceAllString(text, "\n")
	text = blankLinesPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
