package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to run. Values come from flags,
// environment variables override them.
type Config struct {
	// ServerURL is the base URL of the chat server API.
	ServerURL string
	// Nickname is the local user identity.
	Nickname string
	// Room is the room to enter on startup.
	Room string
	// LogLevel is the zap log level.
	LogLevel string
	// PollInterval is the refresh period for the active room.
	PollInterval time.Duration
	// TelegramToken and TelegramChatID configure out-of-band alerts;
	// empty token disables them.
	TelegramToken  string
	TelegramChatID string
}

func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	// .env рядом с бинарником, если есть
	_ = godotenv.Load()

	cfg := &Config{}
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", "http://localhost:5000", "chat server base URL")
	fs.StringVar(&cfg.Nickname, "n", "", "nickname to chat as")
	fs.StringVar(&cfg.Room, "r", "general", "room to enter on startup")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level")
	fs.DurationVar(&cfg.PollInterval, "i", 2500*time.Millisecond, "poll interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if env := os.Getenv("CHAT_SERVER_URL"); env != "" {
		cfg.ServerURL = env
	}
	if env := os.Getenv("CHAT_NICKNAME"); env != "" {
		cfg.Nickname = env
	}
	if env := os.Getenv("CHAT_ROOM"); env != "" {
		cfg.Room = env
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}
	if env := os.Getenv("POLL_INTERVAL"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL %q: %w", env, err)
		}
		cfg.PollInterval = d
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if cfg.Nickname == "" {
		return nil, fmt.Errorf("nickname is required (-n flag or CHAT_NICKNAME)")
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive")
	}

	return cfg, nil
}
