package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"podash/pkg/keymaps"
)

// EnvPrefix is prepended to environment overrides, e.g. PODASH_TOKEN
const EnvPrefix = "PODASH"

// Config holds the application configuration
type Config struct {
	APIBaseURL     string            `mapstructure:"api_base_url" json:"api_base_url"`
	SocketURL      string            `mapstructure:"socket_url" json:"socket_url"`
	UserID         string            `mapstructure:"user_id" json:"user_id"`
	Token          string            `mapstructure:"token" json:"token"`
	RequestTimeout time.Duration     `mapstructure:"request_timeout" json:"request_timeout"`
	ToastTTL       time.Duration     `mapstructure:"toast_ttl" json:"toast_ttl"`
	LogFile        string            `mapstructure:"log_file" json:"log_file"`
	KeyMap         map[string]string `mapstructure:"keymap" json:"keymap"`
	StylesFile     string            `mapstructure:"styles_file" json:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`
	SuccessColor      string `json:"success_color"`

	// Task and order markers
	UrgentColor    string            `json:"urgent_color"`
	PendingColor   string            `json:"pending_color"`
	CompletedColor string            `json:"completed_color"`
	BadgeColors    map[string]string `json:"badge_colors"`
}

// DefaultStyles returns the built-in palette
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		SuccessColor:      "10",
		UrgentColor:       "208",
		PendingColor:      "220",
		CompletedColor:    "40",
		BadgeColors: map[string]string{
			"blue":   "33",
			"green":  "34",
			"purple": "135",
			"orange": "208",
			"pink":   "211",
			"teal":   "37",
			"yellow": "220",
			"gray":   "245",
		},
	}
}

// Dir returns the directory holding the configuration files
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "podash"), nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("api_base_url", "http://localhost:5000")
	v.SetDefault("socket_url", "ws://localhost:5000/ws")
	v.SetDefault("user_id", "")
	v.SetDefault("token", "")
	v.SetDefault("request_timeout", 15*time.Second)
	v.SetDefault("toast_ttl", 3*time.Second)
	v.SetDefault("log_file", "")
	v.SetDefault("keymap", keymaps.GetDefaultKeyMappings())
	v.SetDefault("styles_file", filepath.Join(configDir, "styles.json"))
}

// Load loads the application configuration from the specified path. A missing
// config file is created with default values. Values from a .env file in the
// working directory and PODASH_* environment variables take precedence over
// the file.
func Load(configPath string) (Config, Styles, error) {
	configDir, err := Dir()
	if err != nil {
		return Config{}, Styles{}, err
	}
	if configPath == "" {
		configPath = filepath.Join(configDir, "config.json")
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, Styles{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, configDir)
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) && !isNotFound(err) {
			return Config{}, Styles{}, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found, create it with default values
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return Config{}, Styles{}, err
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return Config{}, Styles{}, fmt.Errorf("writing default config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, Styles{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.UserID == "" && cfg.Token != "" {
		cfg.UserID = UserIDFromToken(cfg.Token)
	}

	styles, err := loadStyles(cfg.StylesFile)
	if err != nil {
		return cfg, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return cfg, styles, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

// UserIDFromToken reads the user id claim from an auth token without
// verifying it; the backend verifies every request. It returns an empty
// string when the token has no usable claim.
func UserIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, name := range []string{"id", "userId", "_id", "sub"} {
		if id, ok := claims[name].(string); ok && id != "" {
			return id
		}
	}
	return ""
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return defaultStyles, err
		}
		// Create the styles file with default values
		if err := os.MkdirAll(filepath.Dir(stylesPath), 0755); err != nil {
			return defaultStyles, err
		}
		stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
		if err != nil {
			return defaultStyles, err
		}
		if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
			return defaultStyles, err
		}
		return defaultStyles, nil
	}

	// Missing keys keep their default values
	loadedStyles := defaultStyles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
