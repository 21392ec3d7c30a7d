// Package extract locates lead fields in the notification emails sent by business-for-sale
// listing platforms. Each platform's template is matched with fixed label/value patterns.
package extract

import (
	"github.com/octobees/lead-parser/internal/entity"
)

// Extract scans body for the label/value pairs of the given source's template.
// The returned fields are raw; normalization and required-field checks happen in the caller.
func Extract(source entity.Source, format Format, body string) (Fields, error) {
	switch source {
	case entity.SourceBizBuySell:
		if format == FormatHTML {
			return extractBizBuySellHTML(body)
		}
		return extractBizBuySellText(body), nil
	case entity.SourceBusinessesForSale:
		return extractBusinessesForSale(asText(format, body)), nil
	case entity.SourceMurphyBusiness:
		return extractMurphy(asText(format, body)), nil
	case entity.SourceBusinessBroker:
		return extractBusinessBroker(asText(format, body)), nil
	default:
		return nil, unsupportedSource()
	}
}

func asText(format Format, body string) string {
	if format == FormatHTML {
		return HTMLToText(body)
	}
	return normalizeLines(body)
}
