package extract

import (
	"strings"

	"github.com/octobees/lead-parser/internal/entity"
)

// Format describes how an email body is encoded.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

var sourceMarkers = []struct {
	source  entity.Source
	markers []string
}{
	{entity.SourceBizBuySell, []string{"bizbuysell"}},
	{entity.SourceBusinessesForSale, []string{"businessesforsale.com", "businesses for sale"}},
	{entity.SourceMurphyBusiness, []string{"murphybusiness.com", "murphy business"}},
	{entity.SourceBusinessBroker, []string{"businessbroker.net"}},
}

var htmlMarkers = []string{"<html", "<body", "<div"}

// Detect identifies the platform that produced body and whether it is HTML or plain text.
func Detect(body string) (entity.Source, Format, error) {
	lowered := strings.ToLower(body)

	format := FormatText
	for _, marker := range htmlMarkers {
		if strings.Contains(lowered, marker) {
			format = FormatHTML
			break
		}
	}

	for _, candidate := range sourceMarkers {
		for _, marker := range candidate.markers {
			if strings.Contains(lowered, marker) {
				return candidate.source, format, nil
			}
		}
	}
	return "", format, unsupportedSource()
}
