package dto

import "github.com/octobees/lead-parser/internal/entity"

// ParseRequest is the JSON form of a parse call. Plain bodies are accepted as well.
type ParseRequest struct {
	Body string `json:"body"`
}

// ParseFailure describes which part of the email could not be resolved.
type ParseFailure struct {
	Source string `json:"source,omitempty"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// NestedLead groups lead values by concern. Absent values are empty strings.
type NestedLead struct {
	Source   string        `json:"source"`
	Contact  NestedContact `json:"contact"`
	Address  NestedAddress `json:"address"`
	Listing  NestedListing `json:"listing"`
	Details  NestedDetails `json:"details"`
	Comments string        `json:"comments"`
}

// NestedContact.BestTimeToContact is not carried by any supported template and stays empty.
type NestedContact struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	BestTimeToContact string `json:"best_time_to_contact"`
}

type NestedAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type NestedListing struct {
	Headline   string `json:"headline"`
	RefID      string `json:"ref_id"`
	ListingID  string `json:"listing_id"`
	ListingURL string `json:"listing_url"`
}

type NestedDetails struct {
	PurchaseTimeline     string `json:"purchase_timeline"`
	InvestmentAmount     string `json:"investment_amount"`
	ServicesInterestedIn string `json:"services_interested_in"`
	HeardAbout           string `json:"heard_about"`
}

// NewNestedLead converts a flat lead record into its grouped representation.
func NewNestedLead(lead entity.Lead) NestedLead {
	return NestedLead{
		Source: string(lead.Source),
		Contact: NestedContact{
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
			Phone:     lead.Phone,
		},
		Address: NestedAddress{
			Line1:   entity.Value(lead.Address),
			City:    entity.Value(lead.City),
			State:   entity.Value(lead.State),
			Zip:     entity.Value(lead.ContactZip),
			Country: entity.Value(lead.Country),
		},
		Listing: NestedListing{
			Headline:   lead.Headline,
			RefID:      lead.RefID,
			ListingID:  lead.ListingID,
			ListingURL: entity.Value(lead.ListingURL),
		},
		Details: NestedDetails{
			PurchaseTimeline:     entity.Value(lead.PurchaseTimeline),
			InvestmentAmount:     entity.Value(lead.InvestmentAmount),
			ServicesInterestedIn: entity.Value(lead.ServicesInterestedIn),
			HeardAbout:           entity.Value(lead.HeardAbout),
		},
		Comments: entity.Value(lead.Comments),
	}
}
