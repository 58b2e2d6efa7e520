package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/maxreelchp-lab/telegram-food-bot/internal/storage"
)

// Placeholders shown when geocoding could not resolve the location.
const (
	unknownCity    = "شهر نامشخص"
	unknownAddress = "آدرس نامشخص"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message

	switch {
	case msg.Location != nil:
		b.handleLocation(msg)
	case msg.IsCommand():
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "mylocation":
			b.handleMyLocation(msg)
		case "help":
			b.handleHelp(msg)
		}
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	btn := tgbotapi.NewKeyboardButtonLocation("📍 ارسال لوکیشن")
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(btn))
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true

	reply := tgbotapi.NewMessage(msg.Chat.ID,
		"سلام! برای شروع، لطفاً لوکیشن خودت رو ارسال کن تا بر اساس همون شهر و آدرس، لینک‌های مناسب اسنپ‌فود رو بسازم.")
	reply.ReplyMarkup = kb
	b.send(reply)
}

func (b *Bot) handleLocation(msg *tgbotapi.Message) {
	lat, lon := msg.Location.Latitude, msg.Location.Longitude
	userID := msg.From.ID

	res := b.geo.ReverseGeocode(context.Background(), lat, lon)

	if err := storage.SaveUserLocation(b.db, userID, lat, lon, res.City, res.Address); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("saving location failed")
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ خطا در ذخیره لوکیشن. دوباره امتحان کن."))
		return
	}

	city := res.City
	if city == "" {
		city = unknownCity
	}
	address := res.Address
	if address == "" {
		address = unknownAddress
	}

	confirm := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(
		"✅ لوکیشن ذخیره شد.\n🏙 شهر: %s\n📫 آدرس: %s\n\nحالا یکی از دسته‌بندی‌ها رو انتخاب کن:",
		city, address))
	confirm.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	b.send(confirm)

	categories := tgbotapi.NewMessage(msg.Chat.ID, "👇 دسته‌بندی‌ها:")
	categories.ReplyMarkup = b.categoryKeyboard(city)
	b.send(categories)
}

func (b *Bot) handleMyLocation(msg *tgbotapi.Message) {
	loc, err := storage.GetUserLocation(b.db, msg.From.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", msg.From.ID).Error("loading location failed")
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "❌ خطا در خواندن لوکیشن. دوباره امتحان کن."))
		return
	}
	if loc == nil {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, "هنوز لوکیشن ثبت نکردی. /start رو بزن و لوکیشن بده."))
		return
	}

	b.send(tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf(
		"📍 لوکیشن فعلی تو:\nLat: %v\nLon: %v\n🏙 %s\n📫 %s",
		loc.Lat, loc.Lon, loc.City, loc.Address)))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.send(tgbotapi.NewMessage(msg.Chat.ID,
		"دستورات:\n/start شروع و ثبت لوکیشن\n/mylocation دیدن لوکیشن ذخیره‌شده"))
}

func (b *Bot) categoryKeyboard(city string) tgbotapi.InlineKeyboardMarkup {
	pairs := b.catalog.BuildAllLinks(city)

	rows := make([][]tgbotapi.InlineKeyboardButton, len(pairs))
	for i, p := range pairs {
		rows[i] = []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonURL(p.Label, p.URL),
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.WithError(err).Error("sending message failed")
	}
}
