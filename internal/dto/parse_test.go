package dto

import (
	"testing"

	"github.com/octobees/lead-parser/internal/entity"
)

func TestNewNestedLead(t *testing.T) {
	zip := "95112"
	city := "San Jose"
	lead := entity.Lead{
		Source:     entity.SourceBusinessBroker,
		FirstName:  "Maria",
		Email:      "maria@example.com",
		ListingID:  "334455",
		ContactZip: &zip,
		City:       &city,
	}

	nested := NewNestedLead(lead)
	if nested.Source != "businessbroker" {
		t.Fatalf("unexpected source: %s", nested.Source)
	}
	if nested.Contact.FirstName != "Maria" || nested.Contact.Email != "maria@example.com" {
		t.Fatalf("unexpected contact: %+v", nested.Contact)
	}
	if nested.Address.Zip != "95112" || nested.Address.City != "San Jose" || nested.Address.State != "" {
		t.Fatalf("unexpected address: %+v", nested.Address)
	}
	if nested.Listing.ListingID != "334455" || nested.Listing.ListingURL != "" {
		t.Fatalf("unexpected listing: %+v", nested.Listing)
	}
	if nested.Contact.BestTimeToContact != "" {
		t.Fatalf("expected empty best_time_to_contact, got %q", nested.Contact.BestTimeToContact)
	}
	if nested.Comments != "" {
		t.Fatalf("expected empty comments, got %q", nested.Comments)
	}
}
