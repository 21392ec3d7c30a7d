package extract

import (
	"github.com/octobees/lead-parser/internal/entity"
)

const (
	murphyName     = `Name`
	murphyEmail    = `Email`
	murphyZip      = `ZIP/Postal Code`
	murphyPhone    = `Phone`
	murphyServices = `Services Interested In`
	murphyHeard    = `How did you hear about us\??`
)

var murphyLabels = compileLabels(`(?im)^[ \t]*%s`+valueLayout,
	murphyName, murphyEmail, murphyZip, murphyPhone, murphyServices, murphyHeard)

// Murphy Business web-form notifications carry no listing reference.
func extractMurphy(text string) Fields {
	fields := Fields{}
	fields.setName(labelValue(murphyLabels[murphyName], text))
	fields.set(entity.FieldEmail, labelValue(murphyLabels[murphyEmail], text))
	fields.set(entity.FieldContactZip, labelValue(murphyLabels[murphyZip], text))
	fields.set(entity.FieldPhone, labelValue(murphyLabels[murphyPhone], text))
	fields.set(entity.FieldServicesInterestedIn, labelValue(murphyLabels[murphyServices], text))
	fields.set(entity.FieldHeardAbout, labelValue(murphyLabels[murphyHeard], text))
	return fields
}
