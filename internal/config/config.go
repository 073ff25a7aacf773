package config

import "time"

// Config is the full prdash configuration. Values come from an optional YAML
// file, then environment variables, then the env-default tags; a default only
// fills a field that is still zero.
type Config struct {
	Server    ServerSection    `yaml:"server"`
	GitHub    GitHubSection    `yaml:"github"`
	Session   SessionSection   `yaml:"session"`
	Dashboard DashboardSection `yaml:"dashboard"`
	Log       LogSection       `yaml:"log"`
}

// ServerSection configures the inbound HTTP listener.
type ServerSection struct {
	ListenAddr        string        `yaml:"listen_addr" env:"PRDASH_LISTEN_ADDR" env-default:":8080" env-description:"address the dashboard listens on"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"PRDASH_READ_HEADER_TIMEOUT" env-default:"10s"`
	ReadTimeout       time.Duration `yaml:"read_timeout" env:"PRDASH_READ_TIMEOUT" env-default:"30s"`
	// WriteTimeout must cover a full aggregation walk.
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"PRDASH_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"PRDASH_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"PRDASH_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// GitHubSection describes the OAuth application and the API endpoints.
type GitHubSection struct {
	ClientID     string        `yaml:"client_id" env:"GITHUB_CLIENT_ID" env-description:"OAuth app client id (required)"`
	ClientSecret string        `yaml:"client_secret" env:"GITHUB_CLIENT_SECRET" env-description:"OAuth app client secret (required)"`
	RedirectURL  string        `yaml:"redirect_url" env:"GITHUB_REDIRECT_URL" env-description:"callback URL, e.g. http://localhost:8080/auth/callback"`
	AuthorizeURL string        `yaml:"authorize_url" env:"GITHUB_AUTHORIZE_URL" env-default:"https://github.com/login/oauth/authorize"`
	TokenURL     string        `yaml:"token_url" env:"GITHUB_TOKEN_URL" env-default:"https://github.com/login/oauth/access_token"`
	APIURL       string        `yaml:"api_url" env:"GITHUB_API_URL" env-default:"https://api.github.com"`
	GraphQLURL   string        `yaml:"graphql_url" env:"GITHUB_GRAPHQL_URL" env-default:"https://api.github.com/graphql"`
	Timeout      time.Duration `yaml:"timeout" env:"GITHUB_TIMEOUT" env-default:"30s"`
}

// SessionSection configures the session and state cookies.
type SessionSection struct {
	Secret       string        `yaml:"secret" env:"SESSION_SECRET" env-description:"HMAC key for cookies, at least 32 bytes (required)"`
	CookieName   string        `yaml:"cookie_name" env:"PRDASH_COOKIE_NAME" env-default:"prdash_session"`
	Validity     time.Duration `yaml:"validity" env:"PRDASH_SESSION_VALIDITY" env-default:"24h"`
	SecureCookie bool          `yaml:"secure_cookie" env:"PRDASH_SECURE_COOKIE" env-description:"set the Secure attribute (enable behind TLS)"`
}

// DashboardSection configures aggregation.
type DashboardSection struct {
	Queries     []string `yaml:"queries" env:"PRDASH_QUERIES" env-separator:";" env-default:"is:open is:pr involves:@me archived:false"`
	PageSize    int      `yaml:"page_size" env:"PRDASH_PAGE_SIZE" env-default:"50"`
	Concurrency int      `yaml:"concurrency" env:"PRDASH_CONCURRENCY" env-default:"1"`
}

// LogSection configures the process logger.
type LogSection struct {
	Level  string `yaml:"level" env:"PRDASH_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"PRDASH_LOG_FORMAT" env-default:"json"`
}
