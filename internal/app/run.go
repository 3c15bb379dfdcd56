package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Flarenzy/hostreg/internal/domain"
	"github.com/Flarenzy/hostreg/internal/inventory"
	"github.com/Flarenzy/hostreg/internal/memstore"
)

const (
	envInventory = "HOSTREG_INVENTORY"
	envLogLevel  = "HOSTREG_LOG_LEVEL"
	envLogFormat = "HOSTREG_LOG_FORMAT"
)

type Config struct {
	InventoryPath string
	LogLevel      string
	LogFormat     string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		InventoryPath: os.Getenv(envInventory),
		LogLevel:      os.Getenv(envLogLevel),
		LogFormat:     os.Getenv(envLogFormat),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", domain.ErrInvalidInput, c.LogFormat)
	}
}

func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Bootstrap builds the registry and, when cfg names an inventory file, loads
// it. Entries the inventory could not load are reported through the error
// while the registry keeps everything that was accepted.
func Bootstrap(ctx context.Context, cfg Config, logger *slog.Logger) (domain.RegistryService, inventory.Report, error) {
	svc := domain.NewLoggingRegistryService(logger, domain.NewRegistryService(memstore.NewNetworkRepository()))

	if cfg.InventoryPath == "" {
		return svc, inventory.Report{}, nil
	}

	f, err := os.Open(cfg.InventoryPath)
	if err != nil {
		return nil, inventory.Report{}, fmt.Errorf("open inventory: %w", err)
	}
	defer f.Close()

	doc, err := inventory.Decode(f)
	if err != nil {
		return nil, inventory.Report{}, fmt.Errorf("%s: %w", cfg.InventoryPath, err)
	}

	report, err := inventory.Load(ctx, svc, doc)
	if logger != nil {
		logger.InfoContext(ctx, "inventory loaded",
			"path", cfg.InventoryPath,
			"networks", report.Networks,
			"hosts", report.Hosts,
			"rejected", report.Rejected,
		)
	}
	return svc, report, err
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", domain.ErrInvalidInput, s)
	}
	return level, nil
}
