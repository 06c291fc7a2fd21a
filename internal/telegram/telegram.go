package telegram

import (
	"fmt"
	"net/http"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type Settings struct {
	Token  string
	Client *http.Client
}

// Telegram 仅用于推送信号通知，不接收指令
type Telegram struct {
	logger   *zap.Logger
	settings Settings
	client   *tele.Bot
}

func NewTelegram(logger *zap.Logger, settings Settings) (*Telegram, error) {
	client, err := tele.NewBot(tele.Settings{
		ParseMode: tele.ModeMarkdown,
		Token:     settings.Token,
		Client:    settings.Client,
	})
	if err != nil {
		return nil, err
	}

	bot := &Telegram{
		logger:   logger,
		settings: settings,
		client:   client,
	}

	logger.Info("telegram notifier ready", zap.String("username", client.Me.Username))
	return bot, nil
}

func (r *Telegram) Notify(chatId, msg string) error {
	_chatId, err := cast.ToInt64E(chatId)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", chatId, err)
	}
	_, err = r.client.Send(tele.ChatID(_chatId), msg, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	return err
}
