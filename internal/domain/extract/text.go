package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	footnoteMarker = regexp.MustCompile(`\[.*?\]`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
)

// cellText is the cell's text with footnote markers like [a] removed.
func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(footnoteMarker.ReplaceAllString(visibleText(s), ""))
}

// visibleText concatenates text nodes, leaving out style and script bodies
// that some templates embed inside table cells.
func visibleText(s *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "style" || n.Data == "script" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return b.String()
}

func isNumeric(s string) bool {
	return digitsOnly.MatchString(s)
}

// maxCellInt caps numbers read from cells.
const maxCellInt = math.MaxInt32

// leadingInt parses the integer prefix of s, ignoring leading whitespace and
// anything after the digits. Text without a digit prefix yields 0; longer
// digit runs saturate at maxCellInt.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n >= maxCellInt {
			n = maxCellInt
			break
		}
	}
	if neg {
		return -n
	}
	return n
}

func lowerAttr(s *goquery.Selection, name string) string {
	return strings.ToLower(s.AttrOr(name, ""))
}

// rowSpan reads the rowspan attribute; missing or junk values count as 1.
func rowSpan(s *goquery.Selection) int {
	if n := leadingInt(s.AttrOr("rowspan", "")); n > 1 {
		return n
	}
	return 1
}
