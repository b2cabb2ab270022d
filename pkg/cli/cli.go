// Package cli wires configuration, the backend client and the store into
// cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"podash/pkg/api"
	"podash/pkg/config"
	"podash/pkg/store"
	"podash/pkg/utils"
)

// Flags holds the global command line flags
type Flags struct {
	ConfigPath string
	Verbose    bool
	APIBaseURL string
	Token      string
	UserID     string
}

// Register adds the global flags to cmd
func (f *Flags) Register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigPath, "config", "", "Path to configuration file")
	pf.BoolVarP(&f.Verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&f.APIBaseURL, "api", "", "Backend base URL (overrides config)")
	pf.StringVar(&f.Token, "token", "", "Auth token (overrides config)")
	pf.StringVar(&f.UserID, "user", "", "User id (defaults to the token's user)")
}

// App is everything a command needs once configuration is loaded
type App struct {
	Config config.Config
	Styles config.Styles
	Client *api.Client
	Store  *store.Store
}

// Setup loads configuration, applies flag overrides, starts logging and
// signs the store in. Callers must call Close when done.
func Setup(f *Flags) (*App, error) {
	cfg, styles, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.APIBaseURL != "" {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if f.Token != "" {
		cfg.Token = f.Token
		if f.UserID == "" {
			if id := config.UserIDFromToken(f.Token); id != "" {
				cfg.UserID = id
			}
		}
	}
	if f.UserID != "" {
		cfg.UserID = f.UserID
	}

	if err := utils.InitLogger(f.Verbose, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	utils.Logger.Infow("starting", "api", cfg.APIBaseURL, "user", cfg.UserID)

	st := store.New(store.State{})
	if cfg.UserID != "" {
		st.Dispatch(store.SetCredentials{UserID: cfg.UserID, Token: cfg.Token})
	}

	return &App{
		Config: cfg,
		Styles: styles,
		Client: api.NewClient(cfg.APIBaseURL, cfg.Token, api.WithTimeout(cfg.RequestTimeout)),
		Store:  st,
	}, nil
}

// Close flushes the logger
func (a *App) Close() {
	utils.CloseLogger()
}

// withApp adapts a command body needing an App to cobra's RunE
func withApp(f *Flags, fn func(cmd *cobra.Command, args []string, app *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := Setup(f)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(cmd, args, app)
	}
}
