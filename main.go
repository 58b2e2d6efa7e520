package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/maxreelchp-lab/telegram-food-bot/config"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/bot"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/database"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/demo"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/geo"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/links"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/selfcheck"
)

func main() {
	mode := flag.String("mode", "bot", "execution mode: bot, demo or check")
	flag.Parse()

	cfg := config.LoadConfig()
	resolver := geo.NewResolver(cfg.GeoBaseURL, cfg.GeoUserAgent, cfg.GeoLanguages, cfg.GeoTimeout)
	catalog := links.NewCatalog(cfg.WebBaseURL)

	switch *mode {
	case "bot":
		if cfg.BotToken == "" {
			log.Fatal("BOT_TOKEN is not set")
		}
		db, err := database.InitDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to init database: %v", err)
		}
		b, err := bot.New(cfg.BotToken, db, resolver, catalog)
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}
		if err := b.Run(); err != nil {
			log.Fatalf("Bot stopped: %v", err)
		}
	case "demo":
		if err := demo.New(resolver, catalog).Run(); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
	case "check":
		if err := selfcheck.Run(cfg.WebBaseURL); err != nil {
			log.Fatalf("Self-check failed: %v", err)
		}
	default:
		log.Fatalf("Unknown mode %q (expected bot, demo or check)", *mode)
	}
}
