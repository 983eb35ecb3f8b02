package config

import (
	"net/url"
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
	defaultPath                = "."
	defaultAPITimeout          = 15 * time.Second
	defaultCredentialTTL       = 30 * 24 * time.Hour
	defaultCartCountKey        = "cartCount"
	defaultCredentialKey       = "token"
	defaultStorageURL          = "mem://"
	defaultCatalogMaxPrice     = 10000
	defaultQRCodeSize          = 256
	defaultQRCodeCorrection    = "M"
	defaultUserAgent           = "storefront-client"
	defaultOrderStatusBasePath = "/order-status"
	defaultHTTPPort            = 8080
	defaultMaxRequestBodySize  = "6M"
	defaultShutdownTimeout     = 10 * time.Second
	defaultPaymentTimeout      = 15 * time.Minute
	defaultCurrency            = "INR"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP configures the local gateway that UI events arrive on
	HTTP struct {
		Port               int           `json:"port" yaml:"port"`
		MaxRequestBodySize string        `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		ShutdownTimeout    time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configures the remote backend
	API *APIConfig `json:"api" yaml:"api"`

	// Storage configures durable local state (cart count, credential)
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Catalog holds the admin form validation bounds, mirroring the backend
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// QRCode configuration for order-status QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Payment configures the hand-off to the external payment widget
	Payment *PaymentConfig `json:"payment" yaml:"payment"`
}

// PaymentConfig defines what the widget is opened with
type PaymentConfig struct {
	KeyID        string `json:"keyId" yaml:"keyId"`
	MerchantName string `json:"merchantName" yaml:"merchantName"`
	Currency     string `json:"currency" yaml:"currency"`
	// CallbackTimeout dismisses a widget that never reported back
	CallbackTimeout time.Duration `json:"callbackTimeout" yaml:"callbackTimeout"`
}

// APIConfig defines how the remote backend is reached
type APIConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// StorageConfig defines the gocloud blob bucket used for durable local state
type StorageConfig struct {
	URL           string `json:"url" yaml:"url"`
	CartCountKey  string `json:"cartCountKey" yaml:"cartCountKey"`
	CredentialKey string `json:"credentialKey" yaml:"credentialKey"`
}

// AuthConfig defines session credential policy
type AuthConfig struct {
	CredentialTTL time.Duration `json:"credentialTtl" yaml:"credentialTtl"`
}

// CatalogConfig defines admin catalog form constraints
type CatalogConfig struct {
	MaxPrice       float64 `json:"maxPrice" yaml:"maxPrice"`
	NameMin        int     `json:"nameMin" yaml:"nameMin"`
	NameMax        int     `json:"nameMax" yaml:"nameMax"`
	CategoryMin    int     `json:"categoryMin" yaml:"categoryMin"`
	CategoryMax    int     `json:"categoryMax" yaml:"categoryMax"`
	TypeMin        int     `json:"typeMin" yaml:"typeMin"`
	TypeMax        int     `json:"typeMax" yaml:"typeMax"`
	DescriptionMax int     `json:"descriptionMax" yaml:"descriptionMax"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
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

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections left empty by the config file.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port <= 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		cfg.HTTP.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = defaultUserAgent
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.URL == "" {
		cfg.Storage.URL = defaultStorageURL
	}
	if cfg.Storage.CartCountKey == "" {
		cfg.Storage.CartCountKey = defaultCartCountKey
	}
	if cfg.Storage.CredentialKey == "" {
		cfg.Storage.CredentialKey = defaultCredentialKey
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.CredentialTTL <= 0 {
		cfg.Auth.CredentialTTL = defaultCredentialTTL
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	cfg.Catalog.applyDefaults()

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeCorrection
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = defaultOrderStatusBasePath
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultCurrency
	}
	if cfg.Payment.CallbackTimeout <= 0 {
		cfg.Payment.CallbackTimeout = defaultPaymentTimeout
	}
}

func (c *CatalogConfig) applyDefaults() {
	if c.MaxPrice <= 0 {
		c.MaxPrice = defaultCatalogMaxPrice
	}
	if c.NameMin <= 0 {
		c.NameMin = 2
	}
	if c.NameMax <= 0 {
		c.NameMax = 100
	}
	if c.CategoryMin <= 0 {
		c.CategoryMin = 2
	}
	if c.CategoryMax <= 0 {
		c.CategoryMax = 50
	}
	if c.TypeMin <= 0 {
		c.TypeMin = 2
	}
	if c.TypeMax <= 0 {
		c.TypeMax = 50
	}
	if c.DescriptionMax <= 0 {
		c.DescriptionMax = 500
	}
}

// Validate checks settings that have no usable default.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	if _, err := url.Parse(cfg.API.BaseURL); err != nil {
		return errors.Wrap(err, "api.baseUrl is not a valid URL")
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
