package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/lead-parser/internal/dto"
	"github.com/octobees/lead-parser/internal/entity"
	middleware "github.com/octobees/lead-parser/internal/middleware"
	"github.com/octobees/lead-parser/internal/service"
	"github.com/octobees/lead-parser/internal/service/extract"
)

const (
	formatFlat   = "flat"
	formatNested = "nested"
)

// LeadParser extracts a lead record from a raw notification email.
type LeadParser interface {
	Parse(ctx context.Context, raw string) (entity.Lead, error)
}

// ParseHandler exposes lead extraction over HTTP.
type ParseHandler struct {
	parser LeadParser
}

// NewParseHandler constructs a parse handler backed by the given parser.
func NewParseHandler(parser LeadParser) *ParseHandler {
	return &ParseHandler{parser: parser}
}

// Parse handles POST /api/parse. The body is the email itself, or JSON {"body": "..."}.
func (h *ParseHandler) Parse(c echo.Context) error {
	format := strings.ToLower(strings.TrimSpace(c.QueryParam("format")))
	if format == "" {
		format = formatFlat
	}
	if format != formatFlat && format != formatNested {
		return Error(c, http.StatusBadRequest, "format must be flat or nested")
	}

	body, err := readEmailBody(c)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return Error(c, httpErr.Code, http.StatusText(httpErr.Code))
		}
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	lead, err := h.parser.Parse(c.Request().Context(), body)
	if err != nil {
		return h.failure(c, err)
	}

	if format == formatNested {
		return Success(c, http.StatusOK, "lead parsed", dto.NewNestedLead(lead))
	}
	return Success(c, http.StatusOK, "lead parsed", lead)
}

func (h *ParseHandler) failure(c echo.Context, err error) error {
	rid := middleware.RequestIDFromContext(c)

	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, service.ErrEmptyBody):
		return Error(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &parseErr):
		log.Printf("request_id=%s source=%s field=%s reason=%q parse failed", rid, parseErr.Source, parseErr.Field, parseErr.Reason)
		return Failure(c, http.StatusUnprocessableEntity, parseErr.Error(), dto.ParseFailure{
			Source: string(parseErr.Source),
			Field:  parseErr.Field,
			Reason: parseErr.Reason,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Error(c, http.StatusRequestTimeout, "request cancelled")
	default:
		log.Printf("request_id=%s parse error: %v", rid, err)
		return Error(c, http.StatusInternalServerError, "failed to parse lead")
	}
}

// readEmailBody returns the email carried by the request. A JSON payload must hold the
// email under "body"; anything else is taken verbatim.
func readEmailBody(c echo.Context) (string, error) {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", err
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(contentType), echo.MIMEApplicationJSON) {
		return string(data), nil
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", nil
	}

	var req dto.ParseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", err
	}
	return req.Body, nil
}

// ErrorHandler renders errors raised outside the handlers, such as oversized bodies or unknown
// routes, in the shared envelope format.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = Error(c, status, message)
	}
	if err != nil {
		log.Printf("request_id=%s failed to write error response: %v", middleware.RequestIDFromContext(c), err)
	}
}
