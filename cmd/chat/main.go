package main

import (
	"bitbucket.org/sotavant/chat-room-client/internal/chatapi"
	"bitbucket.org/sotavant/chat-room-client/internal/config"
	"bitbucket.org/sotavant/chat-room-client/internal/logger"
	"bitbucket.org/sotavant/chat-room-client/internal/notify"
	"bitbucket.org/sotavant/chat-room-client/internal/session"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := run(cfg); err != nil {
		panic(err)
	}
}

func run(cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	logger.Log.Info("starting chat client",
		zap.String("server", cfg.ServerURL),
		zap.String("nickname", cfg.Nickname),
		zap.String("room", cfg.Room),
	)

	client := chatapi.NewHTTPClient(cfg.ServerURL, cfg.Nickname)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.TelegramToken != "" {
		tn, err := notify.NewTelegramNotifier(notify.TelegramConfig{
			Token:  cfg.TelegramToken,
			ChatID: cfg.TelegramChatID,
		})
		if err != nil {
			return err
		}
		notifier = tn
	}

	// разрешение на уведомления есть только если настроен канал доставки
	perm := notify.NewPermission(cfg.TelegramToken != "")
	gate := notify.NewGate(perm, notifier)

	ui := newConsoleUI(cfg.Nickname)
	sess := session.New(session.Config{
		Client:   client,
		Gate:     gate,
		Listener: ui,
		Nickname: cfg.Nickname,
		Interval: cfg.PollInterval,
	})
	defer sess.Stop()

	coord := session.NewCoordinator(client, sess, cfg.Nickname)

	sess.SwitchRoom(cfg.Room)

	return commandLoop(sess, coord, client, perm)
}
