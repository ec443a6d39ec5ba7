// file: internals/features/notifications/service/telegram_service.go
package service

import (
	"log"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"bimbelku_backend/internals/configs"
)

// Notifier opsional: aktif hanya bila TELEGRAM_BOT_TOKEN & TELEGRAM_CHAT_ID diset.
var (
	telegramBot    *telebot.Bot
	telegramChatID int64
)

func InitTelegram() {
	token := configs.GetEnv("TELEGRAM_BOT_TOKEN")
	chatIDRaw := configs.GetEnv("TELEGRAM_CHAT_ID")
	if token == "" || chatIDRaw == "" {
		log.Println("[INFO] Telegram notifier dinonaktifkan (token/chat id kosong)")
		return
	}

	chatID, err := strconv.ParseInt(chatIDRaw, 10, 64)
	if err != nil {
		log.Printf("[WARN] TELEGRAM_CHAT_ID tidak valid: %v", err)
		return
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Printf("[WARN] Gagal inisialisasi Telegram bot: %v", err)
		return
	}

	telegramBot = bot
	telegramChatID = chatID
	log.Println("✅ Telegram notifier aktif.")
}

// SendTelegram mengirim notifikasi ke chat admin. No-op kalau notifier mati.
func SendTelegram(text string) error {
	if telegramBot == nil {
		return nil
	}
	_, err := telegramBot.Send(&telebot.User{ID: telegramChatID}, text)
	return err
}

func TelegramEnabled() bool { return telegramBot != nil }
