package app

import (
	"fmt"

	"github.com/sufield/prdash/internal/adapters/outbound/github"
	"github.com/sufield/prdash/internal/config"
	"github.com/sufield/prdash/internal/debug"
	"github.com/sufield/prdash/internal/session"
)

// Application is the composition root that wires all dependencies.
type Application struct {
	Config     *config.Config
	GitHub     *github.Client
	Aggregator *Aggregator
	Handshake  *Handshake
	Sessions   *session.Codec
	State      *session.StateSigner
}

// Bootstrap creates and wires all application components from a validated
// configuration. githubOpts are passed through to the GitHub adapter.
func Bootstrap(cfg *config.Config, githubOpts ...github.Option) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	gh, err := github.New(github.Config{
		ClientID:     cfg.GitHub.ClientID,
		ClientSecret: cfg.GitHub.ClientSecret,
		RedirectURL:  cfg.GitHub.RedirectURL,
		AuthorizeURL: cfg.GitHub.AuthorizeURL,
		TokenURL:     cfg.GitHub.TokenURL,
		APIURL:       cfg.GitHub.APIURL,
		GraphQLURL:   cfg.GitHub.GraphQLURL,
		PageSize:     cfg.Dashboard.PageSize,
		Timeout:      cfg.GitHub.Timeout,
	}, githubOpts...)
	if err != nil {
		return nil, fmt.Errorf("create github client: %w", err)
	}

	secret := []byte(cfg.Session.Secret)
	codec, err := session.NewCodec(secret, cfg.Session.Validity)
	if err != nil {
		return nil, fmt.Errorf("create session codec: %w", err)
	}
	state, err := session.NewStateSigner(secret, session.DefaultStateTTL)
	if err != nil {
		return nil, fmt.Errorf("create state signer: %w", err)
	}

	concurrency := cfg.Dashboard.Concurrency
	if debug.Active.SingleThreaded {
		concurrency = 1
	}
	aggregator, err := NewAggregator(gh, AggregatorConfig{
		Queries:     cfg.Dashboard.Queries,
		Concurrency: concurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("create aggregator: %w", err)
	}

	handshake, err := NewHandshake(gh, state)
	if err != nil {
		return nil, fmt.Errorf("create handshake: %w", err)
	}

	return &Application{
		Config:     cfg,
		GitHub:     gh,
		Aggregator: aggregator,
		Handshake:  handshake,
		Sessions:   codec,
		State:      state,
	}, nil
}
