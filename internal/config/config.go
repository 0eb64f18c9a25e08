package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Ключи конфигурации
const (
	KeyStoreBeforeRequest       = "offline.store_before_request"
	KeyDisableRequestCountCache = "offline.disable_request_count_cache"
	KeyMaxCellularUploadBytes   = "offline.max_cellular_upload_bytes"
	KeyInlineDocumentLimit      = "offline.inline_document_limit"
	KeyDocumentsSeal            = "documents.seal"
	KeyDocumentsSecret          = "documents.secret"
	KeyServerURL                = "server.url"
	KeyServerToken              = "server.token"
	KeyDeviceID                 = "device.id"
	KeyDatabasePath             = "database.path"
	KeyBlobsPath                = "blobs.path"
	KeyLogLevel                 = "log.level"
)

const (
	envPrefix                     = "OFFLINESYNC"
	defaultServerURL              = "http://localhost:8080"
	defaultDatabasePath           = "offlinesync.db"
	defaultBlobsPath              = "offlinesync-blobs.db"
	defaultLogLevel               = "info"
	defaultMaxCellularUploadBytes = 5 * 1024 * 1024
	defaultInlineDocumentLimit    = 256 * 1024
)

// Source - источник конфигурации для очереди запросов
type Source interface {
	// IsFlagSet reports whether key holds a true value
	IsFlagSet(key string) bool

	// ValueOrDefault returns the string value of key, def if it is not set
	ValueOrDefault(key, def string) string
}

// AppConfig - параметры запуска клиента
type AppConfig struct {
	ServerURL      string
	ServerToken    string
	DeviceID       string
	DatabasePath   string
	BlobsPath      string
	LogLevel       string
	DocumentSecret string
	SealDocuments  bool
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault(KeyServerURL, defaultServerURL)
	configViper.SetDefault(KeyDatabasePath, defaultDatabasePath)
	configViper.SetDefault(KeyBlobsPath, defaultBlobsPath)
	configViper.SetDefault(KeyLogLevel, defaultLogLevel)
	configViper.SetDefault(KeyStoreBeforeRequest, true)
	configViper.SetDefault(KeyDisableRequestCountCache, false)
	configViper.SetDefault(KeyMaxCellularUploadBytes, defaultMaxCellularUploadBytes)
	configViper.SetDefault(KeyInlineDocumentLimit, defaultInlineDocumentLimit)
	configViper.SetDefault(KeyDocumentsSeal, false)
}

// ReadFile подключает необязательный файл конфигурации
func ReadFile(configViper *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	configViper.SetConfigFile(path)
	if err := configViper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		ServerURL:      configViper.GetString(KeyServerURL),
		ServerToken:    configViper.GetString(KeyServerToken),
		DeviceID:       configViper.GetString(KeyDeviceID),
		DatabasePath:   configViper.GetString(KeyDatabasePath),
		BlobsPath:      configViper.GetString(KeyBlobsPath),
		LogLevel:       configViper.GetString(KeyLogLevel),
		SealDocuments:  configViper.GetBool(KeyDocumentsSeal),
		DocumentSecret: configViper.GetString(KeyDocumentsSecret),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if strings.TrimSpace(c.ServerURL) == "" {
		return fmt.Errorf("server.url is required")
	}
	if c.SealDocuments && strings.TrimSpace(c.BlobsPath) == "" {
		return fmt.Errorf("blobs.path is required when documents.seal is set")
	}
	return nil
}

// Viper adapts a viper instance to Source
type Viper struct {
	v *viper.Viper
}

// NewSource wraps configViper as a Source
func NewSource(configViper *viper.Viper) *Viper {
	return &Viper{v: configViper}
}

// IsFlagSet reports whether key holds a true value
func (s *Viper) IsFlagSet(key string) bool {
	return s.v.GetBool(key)
}

// ValueOrDefault returns the string value of key, def if it is not set
func (s *Viper) ValueOrDefault(key, def string) string {
	if !s.v.IsSet(key) {
		return def
	}
	value := s.v.GetString(key)
	if value == "" {
		return def
	}
	return value
}

// Int64 читает целое значение key из src; нечисловое значение заменяется на def
func Int64(src Source, key string, def int64) int64 {
	raw := src.ValueOrDefault(key, "")
	if raw == "" {
		return def
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return def
	}
	return value
}

// Static - Source из фиксированного набора значений
type Static map[string]string

// IsFlagSet reports whether key holds a true value
func (s Static) IsFlagSet(key string) bool {
	value, err := strconv.ParseBool(s[key])
	return err == nil && value
}

// ValueOrDefault returns the value of key, def if it is not set
func (s Static) ValueOrDefault(key, def string) string {
	if value, ok := s[key]; ok && value != "" {
		return value
	}
	return def
}
