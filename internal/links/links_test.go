package links

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://snappfood.ir"

func TestBuildLink_KnownCategories(t *testing.T) {
	catalog := NewCatalog(testBase)

	for key := range categoryQueries {
		t.Run(key, func(t *testing.T) {
			link := catalog.BuildLink(key, "تهران")
			assert.True(t, strings.HasPrefix(link, testBase+"/search?query="))
			assert.NotEqual(t, testBase+"/search?query=", link, "known category should produce a non-empty query")
		})
	}
}

func TestBuildLink_EncodesPersianQuery(t *testing.T) {
	catalog := NewCatalog(testBase)

	link := catalog.BuildLink("pizza", "تهران")
	assert.Contains(t, link, "%D9%BE%DB%8C%D8%AA%D8%B2%D8%A7")
}

func TestBuildLink_UnknownCategoryYieldsEmptyQuery(t *testing.T) {
	catalog := NewCatalog(testBase)

	link := catalog.BuildLink("sushi", "")
	assert.Equal(t, testBase+"/search?query=", link)
}

func TestBuildLink_CityHintDoesNotChangeURL(t *testing.T) {
	catalog := NewCatalog(testBase)

	assert.Equal(t, catalog.BuildLink("kebab", ""), catalog.BuildLink("kebab", "تهران"))
}

func TestBuildLink_QueryRoundTrips(t *testing.T) {
	catalog := NewCatalog(testBase)

	for key, want := range categoryQueries {
		parsed, err := url.Parse(catalog.BuildLink(key, ""))
		require.NoError(t, err)
		assert.Equal(t, want, parsed.Query().Get("query"))
	}
}

func TestBuildAllLinks_CountAndOrder(t *testing.T) {
	catalog := NewCatalog(testBase)

	pairs := catalog.BuildAllLinks("تهران")
	require.Len(t, pairs, 5)

	wantLabels := []string{
		"🍕 پیتزا ارزان",
		"🍖 کباب ارزان",
		"🍔 برگر ارزان",
		"🥪 ساندویچ ارزان",
		"🍽 ایرانی ارزان",
	}
	for i, pair := range pairs {
		assert.Equal(t, wantLabels[i], pair.Label)
		assert.True(t, strings.HasPrefix(pair.URL, testBase+"/search?query="))
	}
}

func TestBuildAllLinks_StableAcrossCalls(t *testing.T) {
	catalog := NewCatalog(testBase)

	assert.Equal(t, catalog.BuildAllLinks(""), catalog.BuildAllLinks("شیراز"))
}
