package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds the HTTP query surface settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// CacheConfig controls the per-source result cache.
type CacheConfig struct {
	Backend         string `mapstructure:"backend"`          // "memory" or "redis"
	TTL             string `mapstructure:"ttl"`              // duration string, e.g., "5m"
	RefreshInterval string `mapstructure:"refresh_interval"` // "0s" disables the background refresher
}

// RedisConfig holds redis connection settings, used when cache.backend=redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GitHubConfig controls the GitHub events source. Username and Token enable
// the source together; one without the other is a configuration error.
type GitHubConfig struct {
	Username string `mapstructure:"username"`
	Token    string `mapstructure:"token"`
	BaseURL  string `mapstructure:"base_url"`
	PerPage  int    `mapstructure:"per_page"`
}

// StackOverflowConfig controls the Stack Exchange source. UserID enables the
// source; Key is an optional quota key.
type StackOverflowConfig struct {
	UserID   int64  `mapstructure:"user_id"`
	Key      string `mapstructure:"key"`
	Site     string `mapstructure:"site"`
	BaseURL  string `mapstructure:"base_url"`
	PageSize int    `mapstructure:"page_size"`
}

// DataSources groups available source adapters.
type DataSources struct {
	GitHub        GitHubConfig        `mapstructure:"github"`
	StackOverflow StackOverflowConfig `mapstructure:"stackoverflow"`
}

// OpenAIConfig enables digest summaries when an API key is present.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// DigestConfig controls digest generation.
type DigestConfig struct {
	TopN      int    `mapstructure:"top_n"`
	OutputDir string `mapstructure:"output_dir"`
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig    `mapstructure:"app"`
	Server  ServerConfig `mapstructure:"server"`
	Cache   CacheConfig  `mapstructure:"cache"`
	Redis   RedisConfig  `mapstructure:"redis"`
	Sources DataSources  `mapstructure:"sources"`
	OpenAI  OpenAIConfig `mapstructure:"openai"`
	Digest  DigestConfig `mapstructure:"digest"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "5m"
	}
	if c.Cache.RefreshInterval == "" {
		c.Cache.RefreshInterval = "0s"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Sources.GitHub.BaseURL == "" {
		c.Sources.GitHub.BaseURL = "https://api.github.com"
	}
	if c.Sources.GitHub.PerPage == 0 {
		c.Sources.GitHub.PerPage = 30
	}
	if c.Sources.StackOverflow.BaseURL == "" {
		c.Sources.StackOverflow.BaseURL = "https://api.stackexchange.com"
	}
	if c.Sources.StackOverflow.Site == "" {
		c.Sources.StackOverflow.Site = "stackoverflow"
	}
	if c.Sources.StackOverflow.PageSize == 0 {
		c.Sources.StackOverflow.PageSize = 30
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Digest.TopN == 0 {
		c.Digest.TopN = 20
	}
	if c.Digest.OutputDir == "" {
		c.Digest.OutputDir = "./out"
	}
}
