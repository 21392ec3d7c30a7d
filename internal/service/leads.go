package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/octobees/lead-parser/internal/entity"
	"github.com/octobees/lead-parser/internal/service/extract"
)

// ErrEmptyBody indicates that the request carried no email content.
var ErrEmptyBody = errors.New("no email content provided")

// LeadsService turns a lead-notification email into a normalized lead record.
type LeadsService struct {
	normalizer *LeadNormalizer
}

// NewLeadsService creates a new instance of LeadsService.
func NewLeadsService(normalizer *LeadNormalizer) *LeadsService {
	if normalizer == nil {
		normalizer = NewLeadNormalizer("")
	}
	return &LeadsService{normalizer: normalizer}
}

// Parse identifies the platform that sent raw and extracts its lead. Either every required
// field of the platform's template resolves or an *extract.ParseError is returned.
func (s *LeadsService) Parse(ctx context.Context, raw string) (entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return entity.Lead{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return entity.Lead{}, ErrEmptyBody
	}

	body, err := extract.Unwrap(raw)
	if err != nil {
		return entity.Lead{}, err
	}
	if strings.TrimSpace(body) == "" {
		return entity.Lead{}, ErrEmptyBody
	}

	source, format, err := extract.Detect(body)
	if err != nil {
		return entity.Lead{}, err
	}

	fields, err := s.resolve(source, format, body)
	if err != nil && format == extract.FormatHTML && source == entity.SourceBizBuySell {
		fields, err = s.fallbackToText(source, body, err)
	}
	if err != nil {
		return entity.Lead{}, err
	}

	return entity.NewLead(source, fields), nil
}

func (s *LeadsService) resolve(source entity.Source, format extract.Format, body string) (extract.Fields, error) {
	raw, err := extract.Extract(source, format, body)
	if err != nil {
		return nil, err
	}
	fields := s.normalizer.Normalize(raw)
	if err := fields.RequireNormalized(raw, source); err != nil {
		return nil, err
	}
	return fields, nil
}

// fallbackToText retries an HTML template that did not match its markup against the text
// rendition of the same document. The HTML failure is reported if both fail.
func (s *LeadsService) fallbackToText(source entity.Source, body string, htmlErr error) (extract.Fields, error) {
	var parseErr *extract.ParseError
	if !errors.As(htmlErr, &parseErr) {
		return nil, htmlErr
	}
	fields, err := s.resolve(source, extract.FormatText, extract.HTMLToText(body))
	if err != nil {
		return nil, htmlErr
	}
	log.Printf("source=%s html extraction failed (%v), text fallback succeeded", source, htmlErr)
	return fields, nil
}
