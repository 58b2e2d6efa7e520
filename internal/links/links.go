// Package links builds snappfood.ir search deep links for the fixed set
// of food categories the bot offers.
package links

import "net/url"

// CategoryLink is one inline-keyboard entry: a display label and the
// search URL it points at.
type CategoryLink struct {
	Label string
	URL   string
}

// categoryQueries maps category keys to their localized search terms.
var categoryQueries = map[string]string{
	"pizza":    "پیتزا",
	"kebab":    "کباب",
	"burger":   "برگر",
	"sandwich": "ساندویچ",
	"irani":    "ایرانی",
}

// categoryOrder fixes the presentation order of the keyboard. Count and
// order are part of the contract with the UI.
var categoryOrder = []struct {
	key   string
	label string
}{
	{"pizza", "🍕 پیتزا ارزان"},
	{"kebab", "🍖 کباب ارزان"},
	{"burger", "🍔 برگر ارزان"},
	{"sandwich", "🥪 ساندویچ ارزان"},
	{"irani", "🍽 ایرانی ارزان"},
}

type Catalog struct {
	baseURL string
}

func NewCatalog(baseURL string) *Catalog {
	return &Catalog{baseURL: baseURL}
}

// BuildLink returns the public web search link for a category. Unknown
// keys yield an empty query rather than an error. cityHint is accepted
// for future city-scoped routing but intentionally does not change the
// URL today.
func (c *Catalog) BuildLink(categoryKey, cityHint string) string {
	_ = cityHint // informational only, see doc comment

	q := url.Values{}
	q.Set("query", categoryQueries[categoryKey])
	return c.baseURL + "/search?" + q.Encode()
}

// BuildAllLinks returns the five (label, url) pairs for the inline
// keyboard, always in the same order.
func (c *Catalog) BuildAllLinks(cityHint string) []CategoryLink {
	pairs := make([]CategoryLink, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		pairs = append(pairs, CategoryLink{
			Label: cat.label,
			URL:   c.BuildLink(cat.key, cityHint),
		})
	}
	return pairs
}
