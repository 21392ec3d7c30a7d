package extract

import (
	"regexp"

	"github.com/octobees/lead-parser/internal/entity"
)

var (
	businessBrokerLabels = compileLabels(`(?im)^[ \t]*%s`+valueLayout,
		regexp.QuoteMeta("Listing Header"),
		regexp.QuoteMeta("BusinessBroker.net Listing Number"),
		regexp.QuoteMeta("Your Internal Listing Number"),
		regexp.QuoteMeta("First Name"),
		regexp.QuoteMeta("Last Name"),
		regexp.QuoteMeta("Email"),
		regexp.QuoteMeta("Phone"),
		regexp.QuoteMeta("Zip"),
		regexp.QuoteMeta("Zip/Postal Code"),
		regexp.QuoteMeta("City"),
		regexp.QuoteMeta("State"),
		regexp.QuoteMeta("Country"),
		regexp.QuoteMeta("Address"),
		regexp.QuoteMeta("Address 1"),
		regexp.QuoteMeta("Address Line 1"),
	)
	businessBrokerComments = regexp.MustCompile(`(?is)Comments\s*:\s*(.*?)(?:\n[-_]{3,}|\z)`)
)

func extractBusinessBroker(text string) Fields {
	get := func(label string) string {
		return labelValue(businessBrokerLabels[regexp.QuoteMeta(label)], text)
	}
	first := func(labels ...string) string {
		for _, label := range labels {
			if v := get(label); v != "" {
				return v
			}
		}
		return ""
	}

	fields := Fields{}
	fields.set(entity.FieldHeadline, get("Listing Header"))
	fields.set(entity.FieldListingID, get("BusinessBroker.net Listing Number"))
	fields.set(entity.FieldRefID, get("Your Internal Listing Number"))
	fields.set(entity.FieldFirstName, get("First Name"))
	fields.set(entity.FieldLastName, get("Last Name"))
	fields.set(entity.FieldEmail, get("Email"))
	fields.set(entity.FieldPhone, get("Phone"))
	fields.set(entity.FieldContactZip, first("Zip", "Zip/Postal Code"))
	fields.set(entity.FieldCity, get("City"))
	fields.set(entity.FieldState, get("State"))
	fields.set(entity.FieldCountry, get("Country"))
	fields.set(entity.FieldAddress, first("Address", "Address 1", "Address Line 1"))
	fields.set(entity.FieldComments, submatch(businessBrokerComments, text))
	return fields
}
