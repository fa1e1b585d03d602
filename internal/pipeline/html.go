package pipeline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"golang.org/x/net/html"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// activityCellClasses is the structural signature of a transaction block in a
// Google Pay activity export. A div must carry all of these classes to be
// considered a content cell.
var activityCellClasses = []string{
	"content-cell",
	"mdl-cell",
	"mdl-cell--6-col",
	"mdl-typography--body-1",
}

var activityDatePattern = regexp.MustCompile(`[A-Za-z]+\s\d{1,2},\s\d{4}`)

// ActivityParser extracts transactions from a browser-exported HTML activity
// page. Blocks lacking a date or an amount are skipped, not errored.
type ActivityParser struct {
	amountPattern *regexp.Regexp
	symbol        string
}

// NewActivityParser builds a parser for the configured currency symbol.
func NewActivityParser(cfg config.Config) *ActivityParser {
	sym := cfg.CurrencySymbol
	return &ActivityParser{
		amountPattern: regexp.MustCompile(regexp.QuoteMeta(sym) + `[\d,]+(?:\.\d{1,2})?`),
		symbol:        sym,
	}
}

// Parse scans the document for content cells and returns one transaction per
// cell that carries both a date and a currency amount. A document yielding
// zero transactions is reported as a *FormatError.
func (p *ActivityParser) Parse(r io.Reader) (domain.Dataset, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing activity html: %w", err)
	}

	var ds domain.Dataset
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" && hasClasses(n, activityCellClasses) {
			text := flattenText(n)
			if txn, ok := p.extractTransaction(text); ok {
				ds = append(ds, txn)
			}
			return // content cells do not nest
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(ds) == 0 {
		return nil, &FormatError{Detail: "no content cells with a date and an amount"}
	}
	return ds, nil
}

// extractTransaction pulls date, amount and type out of a flattened content
// cell. The full text becomes the description since categorization keys off it.
func (p *ActivityParser) extractTransaction(text string) (domain.Transaction, bool) {
	dateStr := activityDatePattern.FindString(text)
	if dateStr == "" {
		return domain.Transaction{}, false
	}
	amountStr := p.amountPattern.FindString(text)
	if amountStr == "" {
		return domain.Transaction{}, false
	}

	// Entries in the same export mix date spellings, so parse leniently
	// instead of pinning one layout.
	date, err := dateparse.ParseAny(dateStr)
	if err != nil {
		return domain.Transaction{}, false
	}

	raw := strings.TrimPrefix(amountStr, p.symbol)
	raw = strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Transaction{}, false
	}

	txnType := domain.TxnDebit
	if strings.Contains(strings.ToLower(text), "received") {
		txnType = domain.TxnCredit
	}

	return domain.Transaction{
		Date:        date,
		Amount:      amount,
		Description: text,
		Type:        txnType,
	}, true
}

// hasClasses reports whether the node's class attribute carries every token.
func hasClasses(n *html.Node, classes []string) bool {
	var attr string
	for _, a := range n.Attr {
		if a.Key == "class" {
			attr = a.Val
			break
		}
	}
	if attr == "" {
		return false
	}
	have := make(map[string]bool)
	for _, c := range strings.Fields(attr) {
		have[c] = true
	}
	for _, c := range classes {
		if !have[c] {
			return false
		}
	}
	return true
}

// flattenText joins all text nodes under n with single spaces, the way the
// original export reader flattens a cell.
func flattenText(n *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
