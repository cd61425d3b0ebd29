package placetopay

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every gateway call unless the caller overrides it.
const DefaultTimeout = 15 * time.Second

// LoggerConfig controls the logger Settings builds when none is injected.
// Level accepts zerolog level names ("debug", "info", ...); Format is "json"
// or "console".
type LoggerConfig struct {
	Level  string
	Format string
}

// SettingsConfig is everything needed to talk to one gateway site.
type SettingsConfig struct {
	// BaseURL is the gateway root, e.g. https://checkout-test.placetopay.com/.
	BaseURL string
	Login   string
	TranKey string

	// Algorithm selects the digest hash; DefaultAlgorithm when empty.
	Algorithm string
	// AuthAdditional is merged into every auth block's additional data.
	AuthAdditional map[string]any

	// Timeout bounds each HTTP call; DefaultTimeout when zero.
	Timeout time.Duration
	// Headers are added to every outgoing request.
	Headers map[string]string

	// HTTPClient overrides the lazily built client. Tests inject one here.
	HTTPClient *http.Client
	// Logger overrides the lazily built logger; LoggerConfig shapes the
	// built one otherwise.
	Logger       *zerolog.Logger
	LoggerConfig LoggerConfig
}

// Settings holds validated gateway configuration and lazily builds the
// shared logger, HTTP client, and carrier. All lazy accessors are safe for
// concurrent use and return the same instance on every call.
type Settings struct {
	baseURL        string
	login          string
	tranKey        string
	algorithm      string
	authAdditional map[string]any
	timeout        time.Duration
	headers        map[string]string

	clientOnce sync.Once
	client     *http.Client

	loggerOnce sync.Once
	logger     *zerolog.Logger
	loggerCfg  LoggerConfig

	carrierOnce sync.Once
	carrier     Carrier
}

// NewSettings validates the configuration. The base URL is normalized to
// carry exactly one trailing slash.
func NewSettings(cfg SettingsConfig) (*Settings, error) {
	if cfg.BaseURL == "" {
		return nil, newConfigurationError("base URL cannot be empty")
	}
	if cfg.Login == "" || cfg.TranKey == "" {
		return nil, newConfigurationError("login and tranKey are required")
	}
	if cfg.Algorithm != "" {
		if _, ok := digestAlgorithms[cfg.Algorithm]; !ok {
			return nil, newConfigurationError("unsupported digest algorithm %q", cfg.Algorithm)
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	s := &Settings{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/") + "/",
		login:          cfg.Login,
		tranKey:        cfg.TranKey,
		algorithm:      cfg.Algorithm,
		authAdditional: cfg.AuthAdditional,
		timeout:        timeout,
		headers:        cfg.Headers,
		client:         cfg.HTTPClient,
		logger:         cfg.Logger,
		loggerCfg:      cfg.LoggerConfig,
	}
	return s, nil
}

// BaseURL returns the normalized gateway root.
func (s *Settings) BaseURL() string { return s.baseURL }

// EndpointURL joins the gateway root with a relative endpoint path.
func (s *Settings) EndpointURL(endpoint string) string {
	return s.baseURL + strings.TrimLeft(endpoint, "/")
}

// Timeout returns the per-call HTTP timeout.
func (s *Settings) Timeout() time.Duration { return s.timeout }

// Headers returns the extra headers attached to every request.
func (s *Settings) Headers() map[string]string { return s.headers }

// Authentication mints a fresh signer. Each call draws a new nonce and seed
// so no two requests share credentials.
func (s *Settings) Authentication() (*Authentication, error) {
	return NewAuthentication(AuthenticationConfig{
		Login:      s.login,
		TranKey:    s.tranKey,
		Algorithm:  s.algorithm,
		Additional: s.authAdditional,
	})
}

// Client returns the shared HTTP client, building one with the configured
// timeout on first use.
func (s *Settings) Client() *http.Client {
	s.clientOnce.Do(func() {
		if s.client == nil {
			s.client = &http.Client{Timeout: s.timeout}
		}
	})
	return s.client
}

// Logger returns the shared logger, building one from LoggerConfig on first
// use.
func (s *Settings) Logger() *zerolog.Logger {
	s.loggerOnce.Do(func() {
		if s.logger != nil {
			return
		}
		level, err := zerolog.ParseLevel(s.loggerCfg.Level)
		if err != nil || s.loggerCfg.Level == "" {
			level = zerolog.InfoLevel
		}
		var base zerolog.Logger
		if strings.ToLower(s.loggerCfg.Format) == "console" {
			out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
			base = zerolog.New(out)
		} else {
			base = zerolog.New(os.Stdout)
		}
		logger := base.Level(level).With().Timestamp().Str("component", "placetopay").Logger()
		s.logger = &logger
	})
	return s.logger
}

// Carrier returns the shared gateway transport, building it on first use.
func (s *Settings) Carrier() Carrier {
	s.carrierOnce.Do(func() {
		s.carrier = newRestCarrier(s)
	})
	return s.carrier
}
