package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/octobees/lead-parser/internal/entity"
)

const (
	labelContactName    = "Contact Name"
	labelContactEmail   = "Contact Email"
	labelContactPhone   = "Contact Phone"
	labelContactZip     = "Contact Zip"
	labelAbleToInvest   = "Able to Invest"
	labelPurchaseWithin = "Purchase Within"
	labelComments       = "Comments"
	labelRefID          = "Ref ID"
	labelListingID      = "Listing ID"
)

var (
	refIDPattern = regexp.MustCompile(`Ref ID:\s*([A-Za-z0-9_-]+)`)
	tokenPattern = regexp.MustCompile(`[A-Za-z0-9_-]+`)

	bizBuySellLabels = compileLabels(`%s`+valueLayout,
		labelContactName,
		labelContactEmail,
		labelContactPhone,
		labelContactZip,
		labelAbleToInvest,
		labelPurchaseWithin,
		labelRefID,
		labelListingID,
	)
	bizBuySellHeadline = regexp.MustCompile(`(?s)regarding your listing:\s*(.*?)\s*Listing ID`)
	bizBuySellTimeline = regexp.MustCompile(`(?s)Purchase Within:\s*(.*?)\s*Comments:`)
	bizBuySellComments = regexp.MustCompile(`(?s)Comments:\s*(.*?)(?:\n(?:You can reply directly|We take our lead quality|Thank you,)|\z)`)
)

func extractBizBuySellHTML(body string) (Fields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html.UnescapeString(body)))
	if err != nil {
		return nil, &ParseError{Source: entity.SourceBizBuySell, Field: "document", Reason: ReasonMalformed}
	}
	p := newPage(doc)

	fields := Fields{}
	fields.set(entity.FieldHeadline, p.headline())
	fields.setName(p.labelValue(labelContactName))
	fields.set(entity.FieldEmail, p.labelValue(labelContactEmail))
	fields.set(entity.FieldPhone, p.labelValue(labelContactPhone))
	fields.set(entity.FieldRefID, p.refID())
	fields.set(entity.FieldListingID, p.listingID())
	fields.set(entity.FieldContactZip, p.labelValue(labelContactZip))
	fields.set(entity.FieldInvestmentAmount, p.labelValue(labelAbleToInvest))
	fields.set(entity.FieldPurchaseTimeline, p.labelValue(labelPurchaseWithin))
	fields.set(entity.FieldComments, p.labelValue(labelComments))
	return fields, nil
}

func extractBizBuySellText(body string) Fields {
	text := normalizeLines(body)

	fields := Fields{}
	fields.set(entity.FieldHeadline, submatch(bizBuySellHeadline, text))
	fields.setName(labelValue(bizBuySellLabels[labelContactName], text))
	fields.set(entity.FieldEmail, labelValue(bizBuySellLabels[labelContactEmail], text))
	fields.set(entity.FieldPhone, labelValue(bizBuySellLabels[labelContactPhone], text))
	fields.set(entity.FieldRefID, labelValue(bizBuySellLabels[labelRefID], text))
	fields.set(entity.FieldListingID, labelValue(bizBuySellLabels[labelListingID], text))
	fields.set(entity.FieldContactZip, labelValue(bizBuySellLabels[labelContactZip], text))
	fields.set(entity.FieldInvestmentAmount, labelValue(bizBuySellLabels[labelAbleToInvest], text))

	timeline := submatch(bizBuySellTimeline, text)
	if timeline == "" {
		timeline = labelValue(bizBuySellLabels[labelPurchaseWithin], text)
	}
	fields.set(entity.FieldPurchaseTimeline, timeline)
	fields.set(entity.FieldComments, submatch(bizBuySellComments, text))
	return fields
}

// page indexes a BizBuySell notification so values can be located relative to their labels.
type page struct {
	doc      *goquery.Document
	elements *goquery.Selection
}

func newPage(doc *goquery.Document) *page {
	return &page{doc: doc, elements: doc.Find("*")}
}

// headline is the first bold text that is neither the sender line nor a field label.
func (p *page) headline() string {
	var headline string
	p.doc.Find("b").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := squash(s.Text())
		if strings.EqualFold(text, "from:") || strings.HasSuffix(text, ":") || len(text) <= 10 {
			return true
		}
		headline = text
		return false
	})
	return headline
}

// labelValue returns the text of the first span following the bold label.
func (p *page) labelValue(label string) string {
	idx := p.indexOf("b", func(s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	})
	if idx < 0 {
		return ""
	}
	return p.nextText(idx, "span")
}

// listingID returns the link text following the "Listing ID:" span.
func (p *page) listingID() string {
	idx := p.indexOf("span", func(s *goquery.Selection) bool {
		return strings.Contains(s.Text(), labelListingID+":")
	})
	if idx < 0 {
		return ""
	}
	return p.nextText(idx, "a")
}

// refID reads the reference either inline ("Ref ID: X") or from the next non-blank text node.
func (p *page) refID() string {
	if len(p.doc.Nodes) == 0 {
		return ""
	}
	texts := textNodes(p.doc.Nodes[0])
	for i, text := range texts {
		if !strings.Contains(text, labelRefID) {
			continue
		}
		if v := submatch(refIDPattern, text); v != "" {
			return v
		}
		for _, next := range texts[i+1:] {
			if strings.TrimSpace(next) != "" {
				return tokenPattern.FindString(next)
			}
		}
		return ""
	}
	return ""
}

func (p *page) indexOf(tag string, match func(*goquery.Selection) bool) int {
	found := -1
	p.elements.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == tag && match(s) {
			found = i
			return false
		}
		return true
	})
	return found
}

// nextText returns the text of the first tag element after position in document order.
func (p *page) nextText(position int, tag string) string {
	var text string
	p.elements.Slice(position+1, goquery.ToEnd).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) != tag {
			return true
		}
		text = squash(s.Text())
		return false
	})
	return text
}
