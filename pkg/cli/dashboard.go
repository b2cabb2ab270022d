package cli

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"podash/pkg/commands"
	"podash/pkg/socket"
	"podash/pkg/store"
	"podash/pkg/ui"
	"podash/pkg/utils"
)

// RootCmd returns the podash root command, which runs the dashboard
func RootCmd(f *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podash",
		Short: "Purchase order and task dashboard",
		Long: `podash shows the tasks assigned to you, lets you mark them done and
edit the purchase orders they were raised from.

Run without a subcommand to open the interactive dashboard.`,
		SilenceUsage: true,
		RunE: withApp(f, func(cmd *cobra.Command, args []string, app *App) error {
			return runDashboard(cmd.Context(), app)
		}),
	}
	f.Register(cmd)
	return cmd
}

func runDashboard(ctx context.Context, app *App) error {
	if app.Config.UserID == "" {
		return commands.ErrNoUser
	}

	notifications := make(chan string, 16)
	sock := socket.NewManager(app.Config.SocketURL, func(text string) {
		select {
		case notifications <- text:
		default:
			utils.Logger.Warnw("dropping notification, UI is behind", "text", text)
		}
	})
	defer sock.Disconnect()

	unsubscribe := syncSocket(ctx, app.Store, sock)
	defer unsubscribe()

	model := ui.NewModel(ctx, ui.Options{
		Store:         app.Store,
		Client:        app.Client,
		Notifications: notifications,
	}, app.Config, app.Styles)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// syncSocket keeps the notification socket following the signed-in user.
// The socket is synced once now and again whenever the credentials change.
func syncSocket(ctx context.Context, st *store.Store, sock *socket.Manager) func() {
	var mu sync.Mutex
	apply := func(auth store.AuthState) {
		if err := sock.Sync(ctx, auth.UserID, auth.Token); err != nil {
			utils.Logger.Warnw("notification socket unavailable", "error", err)
		}
	}

	last := st.State().Auth
	apply(last)
	return st.Subscribe(func(s store.State) {
		mu.Lock()
		defer mu.Unlock()
		if s.Auth == last {
			return
		}
		last = s.Auth
		apply(last)
	})
}
