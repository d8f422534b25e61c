package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultProvider    = "local"
	defaultBucketURL   = "mem://"
	defaultSessionTTL  = time.Hour
	defaultSignInRate  = time.Second
	defaultSignInBurst = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Keychain configuration for the local session marker
	Keychain *KeychainConfig `json:"keychain" yaml:"keychain"`

	// Metrics configuration, optional
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider selects the identity backend; only "local" ships in this module
	Provider string `json:"provider" yaml:"provider"`

	// RedirectURL is passed along with password reset emails, may be empty
	RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`

	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// SessionTTL is the lifetime of sessions issued by the local provider
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`

	// AutoConfirm marks new local accounts as confirmed right away
	AutoConfirm bool `json:"autoConfirm" yaml:"autoConfirm"`

	// TokenSecret signs local session tokens
	TokenSecret string `json:"tokenSecret" yaml:"tokenSecret"`

	// SignInRate is the refill interval of the per-email attempt limiter
	SignInRate  time.Duration `json:"signInRate" yaml:"signInRate"`
	SignInBurst int           `json:"signInBurst" yaml:"signInBurst"`
}

// KeychainConfig defines where the secure storage lives and how values are sealed
type KeychainConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "file:///var/lib/textura?create_dir=true" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// KeeperURL is a gocloud.dev secrets URL, e.g. "base64key://<32 bytes, base64>"
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

// MetricsConfig defines the Prometheus scrape endpoint
type MetricsConfig struct {
	// ListenAddr enables the /metrics listener when non-empty
	ListenAddr string `json:"listenAddr" yaml:"listenAddr"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML keys: AUTH_TOKENSECRET -> auth.tokenSecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if strings.TrimSpace(cfg.Auth.Provider) == "" {
		cfg.Auth.Provider = defaultProvider
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.SignInRate <= 0 {
		cfg.Auth.SignInRate = defaultSignInRate
	}
	if cfg.Auth.SignInBurst <= 0 {
		cfg.Auth.SignInBurst = defaultSignInBurst
	}

	if cfg.Keychain == nil {
		cfg.Keychain = &KeychainConfig{}
	}
	if strings.TrimSpace(cfg.Keychain.BucketURL) == "" {
		cfg.Keychain.BucketURL = defaultBucketURL
	}
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
