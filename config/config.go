package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultGuard              = "web"
	defaultBcryptCost         = 12
	defaultRememberMeTTL      = 2 * 365 * 24 * time.Hour
	defaultRecycleBuffer      = 60 * time.Second
	defaultAccessTokenPrefix  = "oat_"
	defaultAccessTokenType    = "auth_token"
	defaultTokenDelimiter     = "."
	defaultSessionCookieName  = "gatehouse_session"
	defaultSessionTTL         = 2 * time.Hour
	defaultSessionCapacity    = 10000
	defaultEventBufferSize    = 1024
	defaultPruningSchedule    = "@every 1h"
	defaultMetricsPath        = "/metrics"
	defaultLoginRateExpiresIn = 3 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Events configures the in-process auth event dispatcher
	Events *EventsConfig `json:"events" yaml:"events"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Pruning configures the expired token cleanup job run by the worker
	Pruning *PruningConfig `json:"pruning" yaml:"pruning"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// RedisConfig defines the Redis connection used by the session store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// SessionConfig defines server-side session storage
type SessionConfig struct {
	// Driver is "redis" or "memory"
	Driver         string        `json:"driver" yaml:"driver"`
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	MemoryCapacity int           `json:"memoryCapacity" yaml:"memoryCapacity"`
}

// CookieConfig defines how auth cookies are encrypted and scoped
type CookieConfig struct {
	// Secret is the master key; encryption and signing keys are derived from it.
	Secret   string `json:"secret" yaml:"secret"`
	Path     string `json:"path" yaml:"path"`
	Domain   string `json:"domain" yaml:"domain"`
	Secure   bool   `json:"secure" yaml:"secure"`
	HTTPOnly bool   `json:"httpOnly" yaml:"httpOnly"`
	SameSite string `json:"sameSite" yaml:"sameSite"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int                  `json:"bcryptCost" yaml:"bcryptCost"`
	DefaultGuard   string               `json:"defaultGuard" yaml:"defaultGuard"`
	RememberMe     RememberMeConfig     `json:"rememberMe" yaml:"rememberMe"`
	AccessTokens   AccessTokensConfig   `json:"accessTokens" yaml:"accessTokens"`
	LoginRateLimit LoginRateLimitConfig `json:"loginRateLimit" yaml:"loginRateLimit"`
}

// RememberMeConfig defines remember-me cookie lifetime and rotation
type RememberMeConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
	// RecycleBuffer is the minimum token age before a remember-me cookie is rotated
	RecycleBuffer time.Duration `json:"recycleBuffer" yaml:"recycleBuffer"`
}

// AccessTokensConfig defines the opaque access token format
type AccessTokensConfig struct {
	Prefix           string        `json:"prefix" yaml:"prefix"`
	Delimiter        string        `json:"delimiter" yaml:"delimiter"`
	Type             string        `json:"type" yaml:"type"`
	SecretSize       int           `json:"secretSize" yaml:"secretSize"`
	DefaultExpiresIn time.Duration `json:"defaultExpiresIn" yaml:"defaultExpiresIn"`
	PurgeExpired     bool          `json:"purgeExpired" yaml:"purgeExpired"`
}

// LoginRateLimitConfig defines per client throttling of login attempts
type LoginRateLimitConfig struct {
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int           `json:"burst" yaml:"burst"`
	ExpiresIn     time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EventsConfig defines the auth event dispatcher queue
type EventsConfig struct {
	BufferSize int  `json:"bufferSize" yaml:"bufferSize"`
	DropIfFull bool `json:"dropIfFull" yaml:"dropIfFull"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "gocloud" for a gocloud.dev topic URL.
	// Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Service account key file (for google provider). Empty uses application default credentials.
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Topic URL such as mem://auth-events (for gocloud provider)
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`

	// PushSecret signs local push requests; the worker verifies them with the same secret.
	PushSecret string `json:"pushSecret" yaml:"pushSecret"`

	// PushAudience is the expected audience of Google push ID tokens.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// PruningConfig defines the cron schedule of the expired token cleanup
type PruningConfig struct {
	Schedule string `json:"schedule" yaml:"schedule"`
}

// WorkerConfig defines the audit worker HTTP server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: AUTH_REMEMBERME_TTL -> auth.rememberMe.ttl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Driver == "" {
		cfg.Session.Driver = "memory"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.MemoryCapacity <= 0 {
		cfg.Session.MemoryCapacity = defaultSessionCapacity
	}

	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{HTTPOnly: true}
	}
	if cfg.Cookie.Path == "" {
		cfg.Cookie.Path = "/"
	}
	if cfg.Cookie.SameSite == "" {
		cfg.Cookie.SameSite = "lax"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	applyAuthDefaults(cfg.Auth)

	if cfg.Events == nil {
		cfg.Events = &EventsConfig{DropIfFull: true}
	}
	if cfg.Events.BufferSize <= 0 {
		cfg.Events.BufferSize = defaultEventBufferSize
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.Pruning == nil {
		cfg.Pruning = &PruningConfig{}
	}
	if cfg.Pruning.Schedule == "" {
		cfg.Pruning.Schedule = defaultPruningSchedule
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
}

func applyAuthDefaults(auth *AuthConfig) {
	if auth.BcryptCost == 0 {
		auth.BcryptCost = defaultBcryptCost
	}
	if auth.DefaultGuard == "" {
		auth.DefaultGuard = defaultGuard
	}
	if auth.RememberMe.TTL <= 0 {
		auth.RememberMe.TTL = defaultRememberMeTTL
	}
	if auth.RememberMe.RecycleBuffer <= 0 {
		auth.RememberMe.RecycleBuffer = defaultRecycleBuffer
	}
	if auth.AccessTokens.Prefix == "" {
		auth.AccessTokens.Prefix = defaultAccessTokenPrefix
	}
	if auth.AccessTokens.Delimiter == "" {
		auth.AccessTokens.Delimiter = defaultTokenDelimiter
	}
	if auth.AccessTokens.Type == "" {
		auth.AccessTokens.Type = defaultAccessTokenType
	}
	if auth.LoginRateLimit.ExpiresIn <= 0 {
		auth.LoginRateLimit.ExpiresIn = defaultLoginRateExpiresIn
	}
}

func validate(cfg *Config) error {
	if len(cfg.Cookie.Secret) < 32 {
		return errors.New("cookie.secret must be at least 32 characters")
	}

	switch cfg.Session.Driver {
	case "memory", "redis":
	default:
		return errors.Errorf("unsupported session driver %q", cfg.Session.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
