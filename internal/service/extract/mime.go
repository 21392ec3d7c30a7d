package extract

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
)

var headerLinePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*:[ \t]`)

// Unwrap returns the displayable body of a raw RFC 5322 message, preferring the HTML part over
// plain text. Payloads that are not MIME messages are returned unchanged.
func Unwrap(raw string) (string, error) {
	trimmed := strings.TrimLeft(raw, "\r\n")
	if !looksLikeMIME(trimmed) {
		return raw, nil
	}

	msg, err := message.Read(strings.NewReader(trimmed))
	if err != nil && !message.IsUnknownCharset(err) && !message.IsUnknownEncoding(err) {
		return "", &ParseError{Field: "body", Reason: ReasonMalformed}
	}

	var htmlBody, textBody string
	walkErr := msg.Walk(func(_ []int, part *message.Entity, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(strings.ToLower(part.Header.Get("Content-Disposition")), "attachment") {
			return nil
		}
		mediaType, _, _ := part.Header.ContentType()
		if mediaType == "" {
			mediaType = "text/plain"
		}
		switch {
		case mediaType == "text/html" && htmlBody == "":
			htmlBody, err = readPart(part)
		case mediaType == "text/plain" && textBody == "":
			textBody, err = readPart(part)
		}
		return err
	})
	if walkErr != nil && !message.IsUnknownCharset(walkErr) && !message.IsUnknownEncoding(walkErr) {
		return "", &ParseError{Field: "body", Reason: ReasonMalformed}
	}

	if htmlBody != "" {
		return htmlBody, nil
	}
	return textBody, nil
}

func readPart(part *message.Entity) (string, error) {
	data, err := io.ReadAll(part.Body)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	return string(data), nil
}

// looksLikeMIME reports whether raw opens with a header block declaring MIME content.
func looksLikeMIME(raw string) bool {
	if !headerLinePattern.MatchString(raw) {
		return false
	}
	header := raw
	if idx := strings.Index(raw, "\n\n"); idx >= 0 {
		header = raw[:idx]
	}
	if idx := strings.Index(raw, "\r\n\r\n"); idx >= 0 && idx < len(header) {
		header = raw[:idx]
	}
	lowered := strings.ToLower(header)
	return strings.Contains(lowered, "content-type:") || strings.Contains(lowered, "mime-version:")
}
