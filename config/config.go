package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultPoolMax            = 10
	defaultPoolIdleTimeout    = 30 * time.Second
	defaultCallTimeout        = 15 * time.Second
	defaultAccountID          = 1

	productionEnv = "production"
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
		CORS      CORSConfig      `json:"cors" yaml:"cors"`
		RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Tenant struct {
		// DefaultAccountID scopes every catalog query until a real tenant model exists
		DefaultAccountID int64 `json:"defaultAccountId" yaml:"defaultAccountId"`
	} `json:"tenant" yaml:"tenant"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig mirrors echo's CORS options
type CORSConfig struct {
	AllowOrigins     []string `json:"allowOrigins" yaml:"allowOrigins"`
	AllowMethods     []string `json:"allowMethods" yaml:"allowMethods"`
	AllowHeaders     []string `json:"allowHeaders" yaml:"allowHeaders"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials"`
	MaxAge           int      `json:"maxAge" yaml:"maxAge"`
}

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// DatabaseConfig holds the SQL Server connection and pool settings
type DatabaseConfig struct {
	Host                   string `json:"host" yaml:"host"`
	Port                   int    `json:"port" yaml:"port"`
	User                   string `json:"user" yaml:"user"`
	Password               string `json:"password" yaml:"password"`
	Name                   string `json:"name" yaml:"name"`
	AppName                string `json:"appName" yaml:"appName"`
	Encrypt                bool   `json:"encrypt" yaml:"encrypt"`
	TrustServerCertificate bool   `json:"trustServerCertificate" yaml:"trustServerCertificate"`

	Pool struct {
		Max         int           `json:"max" yaml:"max"`
		Min         int           `json:"min" yaml:"min"`
		IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"pool" yaml:"pool"`

	// CallTimeout bounds a single stored-procedure call. Unset means the default,
	// an explicit zero disables the deadline.
	CallTimeout *time.Duration `json:"callTimeout" yaml:"callTimeout"`
}

// ProcedureTimeout returns the per-call deadline; zero means none.
func (d *DatabaseConfig) ProcedureTimeout() time.Duration {
	if d == nil || d.CallTimeout == nil {
		return 0
	}

	return *d.CallTimeout
}

// IsProduction reports whether the service runs in the hardened deployment mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env.Env), productionEnv)
}

// LoadWithEnv loads <currEnv>.yaml through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	k := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existing := k.Raw()

	// DATABASE_POOL_IDLETIMEOUT -> database.pool.idleTimeout
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return overrideKey(key, existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Tenant.DefaultAccountID == 0 {
		c.Tenant.DefaultAccountID = defaultAccountID
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.Pool.Max == 0 {
		c.Database.Pool.Max = defaultPoolMax
	}
	if c.Database.Pool.IdleTimeout == 0 {
		c.Database.Pool.IdleTimeout = defaultPoolIdleTimeout
	}
	if c.Database.CallTimeout == nil {
		timeout := defaultCallTimeout
		c.Database.CallTimeout = &timeout
	}
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d out of range", c.HTTP.Port)
	}

	if c.Database.Pool.Min < 0 || c.Database.Pool.Min > c.Database.Pool.Max {
		return errors.Errorf("database.pool.min %d must be between 0 and database.pool.max %d",
			c.Database.Pool.Min, c.Database.Pool.Max)
	}

	if c.HTTP.RateLimit.Enabled && c.HTTP.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("http.rateLimit.requestsPerSecond must be positive when rate limiting is enabled")
	}

	return nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// overrideKey maps an environment variable onto a config path. Variables that do not
// address a nested key under a known section are dropped (koanf skips empty keys).
func overrideKey(rawKey string, existing map[string]any) string {
	key := canonicalizeEnvKey(rawKey, existing)

	section, _, nested := strings.Cut(key, ".")
	if !nested {
		return ""
	}
	if _, ok := existing[section].(map[string]any); !ok {
		return ""
	}

	return key
}

// canonicalizeEnvKey turns ENV_VAR_NAME into a dotted path whose segments follow the
// casing of keys already present in the YAML, so env overrides land on the same field.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			canonical = append(canonical, segment)
			current = nil

			continue
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
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
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
