package socket

import (
	"github.com/s21platform/family-web/internal/chat"
	"github.com/s21platform/family-web/internal/config"
)

// Dialer hands out one Client per credential, sharing the reconnect policy.
type Dialer struct {
	settings Settings
	logger   Logger
}

func NewDialer(cfg *config.Config, logger Logger) *Dialer {
	return &Dialer{settings: SettingsFromConfig(cfg, ""), logger: logger}
}

func (d *Dialer) Dial(token string) chat.Stream {
	settings := d.settings
	settings.Token = token
	return New(settings, d.logger)
}
