package embedding

import (
	"fmt"
	"log/slog"
	"sync"

	"wordspace/internal/domain"
)

// RemoteEmbedder is an embedder that needs a one-time load (model
// warm-up, connectivity probe) before use.
type RemoteEmbedder interface {
	domain.Embedder
	Load() error
}

// Provider routes embedding requests to the remote encoder once it
// has loaded, and to the deterministic fallback otherwise. The load is
// attempted exactly once per process; after a failure the provider
// stays on the fallback for the rest of its lifetime.
type Provider struct {
	mu        sync.Mutex
	loadOnce  sync.Once
	remote    RemoteEmbedder
	fallback  domain.Embedder
	active    domain.Embedder
	remoteErr error
	logger    *slog.Logger
}

// NewProvider creates a provider preferring remote over fallback.
// remote may be nil, in which case the fallback is used from the
// start.
func NewProvider(remote RemoteEmbedder, fb domain.Embedder, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{remote: remote, fallback: fb, logger: logger}
}

// Load performs the one-time remote warm-up. It is idempotent:
// concurrent callers share a single attempt and all observe the same
// outcome. Never returns an error; a failed load latches the fallback.
func (p *Provider) Load() {
	p.loadOnce.Do(func() {
		if p.remote == nil {
			p.setActive(p.fallback)
			return
		}
		if err := p.remote.Load(); err != nil {
			p.logger.Warn("remote encoder failed to load, using fallback",
				"encoder", p.remote.Name(), "error", err)
			p.demote(err)
			return
		}
		p.logger.Info("remote encoder loaded",
			"encoder", p.remote.Name(), "dimension", p.remote.Dimension())
		p.setActive(p.remote)
	})
}

// Name returns the identifier of the currently active embedder.
func (p *Provider) Name() string {
	p.Load()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active.Name()
}

// Dimension returns the dimensionality of the active embedder.
func (p *Provider) Dimension() int {
	p.Load()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active.Dimension()
}

// Embed produces a vector for the word via the active embedder. A
// runtime remote failure demotes the provider to the fallback
// permanently; the word still gets a vector.
func (p *Provider) Embed(word string) ([]float64, error) {
	p.Load()
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	vec, err := active.Embed(word)
	if err == nil {
		return vec, nil
	}
	if active == p.fallback {
		return nil, err
	}
	p.logger.Warn("remote embed failed, switching to fallback",
		"word", word, "error", err)
	p.demote(err)
	return p.fallback.Embed(word)
}

// Degraded reports whether the provider ended up on the fallback
// despite a remote encoder being configured.
func (p *Provider) Degraded() bool {
	p.Load()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remoteErr != nil
}

// RemoteErr returns the terminal remote-encoder error, wrapped in
// ErrProviderUnavailable, or nil while the remote encoder works.
func (p *Provider) RemoteErr() error {
	p.Load()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remoteErr
}

func (p *Provider) setActive(e domain.Embedder) {
	p.mu.Lock()
	p.active = e
	p.mu.Unlock()
}

func (p *Provider) demote(cause error) {
	p.mu.Lock()
	p.active = p.fallback
	p.remoteErr = fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, cause)
	p.mu.Unlock()
}
