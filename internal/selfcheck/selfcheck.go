// Package selfcheck exercises the resolve → persist → link pipeline
// end to end against an in-process geocoding stub and a throwaway
// database, so a deployment can be verified without touching Telegram
// or the real Nominatim service.
package selfcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/database"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/geo"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/links"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/storage"
)

// Run returns an error when any check fails; every check is printed
// either way.
func Run(webBaseURL string) error {
	failures := 0
	check := func(name string, ok bool) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failures++
		}
		fmt.Printf("[%4s] %s\n", status, name)
	}

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"display_name":"Azadi Tower, Tehran, Iran","address":{"city":"Tehran"}}`)
	}))

	resolver := geo.NewResolver(stub.URL, "TelegramFoodBot/selfcheck", "fa,en", 5*time.Second)
	res := resolver.ReverseGeocode(context.Background(), 35.7, 51.4)
	check("reverse geocode resolves the city", res.Resolved && res.City == "Tehran")
	check("reverse geocode keeps the display name", strings.HasPrefix(res.Address, "Azadi Tower"))

	stub.Close()
	down := resolver.ReverseGeocode(context.Background(), 35.7, 51.4)
	check("geocode fails open when the provider is down",
		!down.Resolved && down.City == "" && down.Address == "")

	dir, err := os.MkdirTemp("", "foodbot-selfcheck")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	db, err := database.InitDB(filepath.Join(dir, "check.db"))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.SaveUserLocation(db, 123, 1.1, 2.2, "CityX", "AddrY"); err != nil {
		return err
	}
	if err := storage.SaveUserLocation(db, 123, 35.7, 51.4, res.City, res.Address); err != nil {
		return err
	}
	loc, err := storage.GetUserLocation(db, 123)
	if err != nil {
		return err
	}
	check("second upsert replaces the row",
		loc != nil && loc.City == "Tehran" && loc.Lat == 35.7 && loc.Lon == 51.4)

	missing, err := storage.GetUserLocation(db, 999)
	if err != nil {
		return err
	}
	check("unknown user reads back as absent", missing == nil)

	catalog := links.NewCatalog(webBaseURL)
	pairs := catalog.BuildAllLinks(res.City)
	check("catalog produces five links", len(pairs) == 5)

	allPrefixed := true
	for _, pair := range pairs {
		if !strings.HasPrefix(pair.URL, webBaseURL+"/search?query=") {
			allPrefixed = false
		}
	}
	check("links share the search base", allPrefixed)
	check("unknown category yields an empty query",
		catalog.BuildLink("sushi", "") == webBaseURL+"/search?query=")

	parsed, err := url.Parse(catalog.BuildLink("pizza", ""))
	check("query encoding round-trips",
		err == nil && parsed.Query().Get("query") == "پیتزا")

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}
