package bot

import (
	"database/sql"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/geo"
	"github.com/maxreelchp-lab/telegram-food-bot/internal/links"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	db      *sql.DB
	geo     *geo.Resolver
	catalog *links.Catalog
}

func New(token string, db *sql.DB, resolver *geo.Resolver, catalog *links.Catalog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, db: db, geo: resolver, catalog: catalog}, nil
}

// Run polls Telegram for updates. Each update is handled in its own
// goroutine so a slow geocoding call never stalls other chats.
func (b *Bot) Run() error {
	log.WithField("account", b.api.Self.UserName).Info("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		go b.handleUpdate(update)
	}
	return nil
}
