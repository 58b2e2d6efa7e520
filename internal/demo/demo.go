// Package demo is a stdin REPL that simulates the location flow without
// a Telegram token.
package demo

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/geo"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/links"
)

type Driver struct {
	geo     *geo.Resolver
	catalog *links.Catalog
}

func New(resolver *geo.Resolver, catalog *links.Catalog) *Driver {
	return &Driver{geo: resolver, catalog: catalog}
}

func (d *Driver) Run() error {
	fmt.Println("=== DEMO MODE ===")
	fmt.Println("Simulates the location flow, no Telegram token needed.")

	reader := bufio.NewReader(os.Stdin)
	lat, err := readFloat(reader, "Enter latitude (e.g., 35.7153 for Tehran): ")
	if err != nil {
		return fmt.Errorf("invalid latitude: %w", err)
	}
	lon, err := readFloat(reader, "Enter longitude (e.g., 51.4043 for Tehran): ")
	if err != nil {
		return fmt.Errorf("invalid longitude: %w", err)
	}

	res := d.geo.ReverseGeocode(context.Background(), lat, lon)
	city := res.City
	if city == "" {
		city = "شهر نامشخص"
	}
	address := res.Address
	if address == "" {
		address = "آدرس نامشخص"
	}
	fmt.Printf("Resolved city: %s\nAddress: %s\n", city, address)

	fmt.Println("Suggested buttons (text → url):")
	for _, pair := range d.catalog.BuildAllLinks(city) {
		fmt.Printf(" - %s → %s\n", pair.Label, pair.URL)
	}
	return nil
}

func readFloat(reader *bufio.Reader, prompt string) (float64, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}
