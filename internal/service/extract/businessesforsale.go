package extract

import (
	"regexp"

	"github.com/octobees/lead-parser/internal/entity"
)

var (
	businessesForSaleListing  = regexp.MustCompile(`Your listing ref:\s*(\d+)\s+(.+)\n(https?://\S+)`)
	businessesForSaleComments = regexp.MustCompile(`(?s)has received the following message:\s*(.+?)\nName:`)
	businessesForSaleLabels   = compileLabels(`(?m)^%s`+valueLayout, "Name", "Email", "Tel")
)

func extractBusinessesForSale(text string) Fields {
	fields := Fields{}
	if m := businessesForSaleListing.FindStringSubmatch(text); m != nil {
		fields.set(entity.FieldRefID, m[1])
		fields.set(entity.FieldHeadline, m[2])
		fields.set(entity.FieldListingURL, m[3])
	}
	fields.setName(labelValue(businessesForSaleLabels["Name"], text))
	fields.set(entity.FieldEmail, labelValue(businessesForSaleLabels["Email"], text))
	fields.set(entity.FieldPhone, labelValue(businessesForSaleLabels["Tel"], text))
	fields.set(entity.FieldComments, submatch(businessesForSaleComments, text))
	return fields
}
