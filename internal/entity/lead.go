package entity

// Source identifies the listing platform that produced a lead-notification email.
type Source string

const (
	SourceBizBuySell        Source = "bizbuysell"
	SourceBusinessesForSale Source = "businessesforsale"
	SourceMurphyBusiness    Source = "murphybusiness"
	SourceBusinessBroker    Source = "businessbroker"
)

// Field names shared by the extractors, the normalizer and the JSON payloads.
const (
	FieldFirstName            = "first_name"
	FieldLastName             = "last_name"
	FieldEmail                = "email"
	FieldPhone                = "phone"
	FieldRefID                = "ref_id"
	FieldListingID            = "listing_id"
	FieldHeadline             = "headline"
	FieldContactZip           = "contact_zip"
	FieldInvestmentAmount     = "investment_amount"
	FieldPurchaseTimeline     = "purchase_timeline"
	FieldComments             = "comments"
	FieldListingURL           = "listing_url"
	FieldServicesInterestedIn = "services_interested_in"
	FieldHeardAbout           = "heard_about"
	FieldAddress              = "address"
	FieldCity                 = "city"
	FieldState                = "state"
	FieldCountry              = "country"
)

// Lead is a prospective buyer's inquiry extracted from a single notification email.
// Optional values are nil when the email did not carry them.
type Lead struct {
	Source    Source `json:"source"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RefID     string `json:"ref_id"`
	ListingID string `json:"listing_id"`
	Headline  string `json:"headline"`

	ContactZip       *string `json:"contact_zip"`
	InvestmentAmount *string `json:"investment_amount"`
	PurchaseTimeline *string `json:"purchase_timeline"`
	Comments         *string `json:"comments"`

	ListingURL           *string `json:"listing_url,omitempty"`
	ServicesInterestedIn *string `json:"services_interested_in,omitempty"`
	HeardAbout           *string `json:"heard_about,omitempty"`
	Address              *string `json:"address,omitempty"`
	City                 *string `json:"city,omitempty"`
	State                *string `json:"state,omitempty"`
	Country              *string `json:"country,omitempty"`
}

// NewLead builds a lead from normalized field values. Empty optional values stay nil.
func NewLead(source Source, fields map[string]string) Lead {
	return Lead{
		Source:    source,
		FirstName: fields[FieldFirstName],
		LastName:  fields[FieldLastName],
		Email:     fields[FieldEmail],
		Phone:     fields[FieldPhone],
		RefID:     fields[FieldRefID],
		ListingID: fields[FieldListingID],
		Headline:  fields[FieldHeadline],

		ContactZip:       optional(fields[FieldContactZip]),
		InvestmentAmount: optional(fields[FieldInvestmentAmount]),
		PurchaseTimeline: optional(fields[FieldPurchaseTimeline]),
		Comments:         optional(fields[FieldComments]),

		ListingURL:           optional(fields[FieldListingURL]),
		ServicesInterestedIn: optional(fields[FieldServicesInterestedIn]),
		HeardAbout:           optional(fields[FieldHeardAbout]),
		Address:              optional(fields[FieldAddress]),
		City:                 optional(fields[FieldCity]),
		State:                optional(fields[FieldState]),
		Country:              optional(fields[FieldCountry]),
	}
}

// Value dereferences an optional field, returning "" when it is absent.
func Value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
