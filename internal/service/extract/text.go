package extract

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// HTMLToText renders the text nodes of an HTML document one per line, skipping scripts and
// styles. Blank lines are dropped and every line is trimmed.
func HTMLToText(body string) string {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return normalizeLines(body)
	}

	return normalizeLines(strings.Join(textNodes(root), "\n"))
}

// textNodes collects the text nodes under root in document order.
func textNodes(root *html.Node) []string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return parts
}

func squash(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func normalizeLines(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// valueLayout captures the same-line value of a label and the line after it.
const valueLayout = `[ \t]*:[ \t]*([^\n]*)(?:\n([^\n]*))?`

// compileLabels builds one pattern per label by substituting the label fragment into layout.
// Labels are regular expression fragments; callers quote literal text.
func compileLabels(layout string, labels ...string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(labels))
	for _, label := range labels {
		patterns[label] = regexp.MustCompile(fmt.Sprintf(layout, label))
	}
	return patterns
}

// labelLine matches a line that opens with its own "Label:" rather than carrying a value.
var labelLine = regexp.MustCompile(`^[A-Za-z][^:\n]{0,60}:(?:[ \t]|$)`)

// labelValue returns the value captured by a pattern compiled with a label layout: the rest of
// the label's line, or the following line when the label stands alone (table cells rendered
// to text). A following line that is itself a label means the value was left blank.
func labelValue(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 3 {
		return ""
	}
	if value := strings.TrimSpace(m[1]); value != "" {
		return value
	}
	next := strings.TrimSpace(m[2])
	if labelLine.MatchString(next) {
		return ""
	}
	return next
}

// submatch returns the first capture group of re in text, trimmed.
func submatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
