package extract

import (
	"errors"
	"strings"

	"github.com/octobees/lead-parser/internal/entity"
)

// Fields holds raw label values keyed by entity field name.
type Fields map[string]string

var requiredFields = map[entity.Source][]string{
	entity.SourceBizBuySell: {
		entity.FieldFirstName,
		entity.FieldLastName,
		entity.FieldEmail,
		entity.FieldPhone,
		entity.FieldRefID,
		entity.FieldListingID,
		entity.FieldHeadline,
	},
	entity.SourceBusinessesForSale: {
		entity.FieldFirstName,
		entity.FieldEmail,
		entity.FieldRefID,
		entity.FieldHeadline,
	},
	entity.SourceMurphyBusiness: {
		entity.FieldFirstName,
		entity.FieldEmail,
	},
	entity.SourceBusinessBroker: {
		entity.FieldFirstName,
		entity.FieldEmail,
		entity.FieldListingID,
	},
}

// RequiredFields lists, in reporting order, the fields a source's template always carries.
func RequiredFields(source entity.Source) []string {
	return append([]string(nil), requiredFields[source]...)
}

// Require returns a ParseError naming the first required field of source that is empty.
func (f Fields) Require(source entity.Source) error {
	required, ok := requiredFields[source]
	if !ok {
		return unsupportedSource()
	}
	for _, field := range required {
		if strings.TrimSpace(f[field]) == "" {
			return missingField(source, field)
		}
	}
	return nil
}

// RequireNormalized is Require for cleaned values. A required field that raw carried but that
// did not survive cleaning is reported as invalid instead of missing.
func (f Fields) RequireNormalized(raw Fields, source entity.Source) error {
	err := f.Require(source)
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Reason == ReasonMissing && strings.TrimSpace(raw[parseErr.Field]) != "" {
		parseErr.Reason = ReasonInvalid
	}
	return err
}

func (f Fields) set(field, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		f[field] = value
	}
}

// setName splits a full contact name on its first space.
func (f Fields) setName(name string) {
	name = strings.TrimSpace(name)
	first, last, _ := strings.Cut(name, " ")
	f.set(entity.FieldFirstName, first)
	f.set(entity.FieldLastName, last)
}
