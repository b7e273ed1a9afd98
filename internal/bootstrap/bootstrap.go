package bootstrap

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/paydeck/transactions-console/internal/client/gateway"
	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/config"
	"github.com/paydeck/transactions-console/pkg/logger"
)

type Bootstrap struct {
	Log     *slog.Logger
	Gateway *gateway.Adapter
	Copies  *clipboard.Tracker
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewConsoleHandler)
	bs.Gateway, err = gateway.NewAdapter(&http.Client{Timeout: 30 * time.Second}, cfg.GatewayBaseURL)
	if err != nil {
		return bs, err
	}
	bs.Copies = clipboard.NewTracker(clipboard.NewMemory(), cfg.CopiedTTL, time.Now)

	return bs, nil
}
