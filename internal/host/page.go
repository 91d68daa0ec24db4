package host

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// InputValue returns the value of the first element matching selector in an HTML page.
// For textarea elements the text content is used, for other elements the value attribute.
func InputValue(r io.Reader, selector string) (string, error) {
	doc, e := goquery.NewDocumentFromReader(r)
	if e != nil {
		return "", fmt.Errorf("parsing page: %w", e)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no element matches %q", selector)
	}

	if goquery.NodeName(sel) == "textarea" {
		return strings.TrimSpace(sel.Text()), nil
	}
	value, _ := sel.Attr("value")
	return strings.TrimSpace(value), nil
}
