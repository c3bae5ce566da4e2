package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"wordspace/internal/config"
	"wordspace/internal/domain"
	"wordspace/internal/embedding"
	"wordspace/internal/embedding/fallback"
	"wordspace/internal/embedding/remote"
	"wordspace/internal/projection"
	"wordspace/internal/service"
	"wordspace/internal/tui"
	"wordspace/internal/vocab"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, seedPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/wordspace/config.yaml if not provided)")
	flag.StringVar(&seedPath, "seed", "", "Path to a seed word list, one word per line (overrides config)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogPath)

	// Assemble the embedding provider
	var remoteEnc embedding.RemoteEmbedder
	switch cfg.Encoder.Type {
	case "fallback", "":
		// character-hash vectors only, no remote encoder
	case "remote", "auto":
		if cfg.Encoder.Remote == nil {
			log.Fatalf("remote encoder config missing")
		}
		client, err := remote.NewClient(remote.Config{
			BaseURL:   cfg.Encoder.Remote.BaseURL,
			APIKeyEnv: cfg.Encoder.Remote.APIKeyEnv,
			Model:     cfg.Encoder.Remote.Model,
			Timeout:   time.Duration(cfg.Encoder.Remote.TimeoutSecs) * time.Second,
			Dimension: cfg.Encoder.Remote.Dimension,
		})
		if err != nil {
			if cfg.Encoder.Type == "remote" {
				log.Fatalf("remote encoder init failed: %v", err)
			}
			logger.Warn("remote encoder init failed, starting on fallback", "error", err)
			break
		}
		remoteEnc = client
		if cfg.Cache.Enabled {
			cache, err := embedding.OpenCache(cfg.Cache.Path, client)
			if err != nil {
				logger.Warn("embedding cache unavailable", "path", cfg.Cache.Path, "error", err)
			} else {
				defer cache.Close()
				remoteEnc = cache
			}
		}
	default:
		log.Fatalf("unknown encoder: %s", cfg.Encoder.Type)
	}
	provider := embedding.NewProvider(remoteEnc, fallback.NewEmbedder(), logger)

	store := vocab.NewStore()
	projector := projection.NewClient(projection.Config{
		URL:     cfg.Layout.URL,
		Timeout: time.Duration(cfg.Layout.TimeoutSecs) * time.Second,
	})
	svc := service.NewSceneService(store, provider, projector, logger)

	if err := seedVocabulary(svc, seedWords(seedPath, cfg), logger); err != nil {
		log.Fatalf("seeding vocabulary failed: %v", err)
	}
	if err := svc.RefreshLayout(); err != nil {
		// the TUI renders a holding message until a layout lands
		logger.Warn("initial layout unavailable", "error", err)
	}

	m := tui.New(svc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func seedWords(seedPath string, cfg *config.AppConfig) []string {
	path := seedPath
	if path == "" {
		path = cfg.Vocabulary.SeedFile
	}
	if path == "" {
		return vocab.DefaultSeedWords
	}
	words, err := vocab.LoadWordList(path)
	if err != nil {
		log.Fatalf("failed to read seed word list: %v", err)
	}
	return words
}

func seedVocabulary(svc *service.SceneServiceImpl, words []string, logger *slog.Logger) error {
	bar := progressbar.Default(int64(len(words)), "embedding seed vocabulary")
	for _, w := range words {
		err := svc.SeedWord(w)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrDuplicateWord):
			logger.Warn("skipping duplicate seed word", "word", w)
		default:
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				logger.Warn("skipping invalid seed word", "word", w, "reason", verr.Reason)
				break
			}
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return nil
}

func newLogger(path string) *slog.Logger {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("cannot open log file %s: %v", path, err)
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
