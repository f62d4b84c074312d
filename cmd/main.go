package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"hospital-dashboard/cmd/bootstrap"
	"hospital-dashboard/config"

	"github.com/spf13/cobra"
)

var errNotSignedIn = errors.New("not signed in, run login first")

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital-dashboard",
		Short:        "Hospital dashboard data layer and development API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(patientsCmd())
	rootCmd.AddCommand(doctorsCmd())
	rootCmd.AddCommand(appointmentsCmd())
	rootCmd.AddCommand(dashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the development API server on top of the mock backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}

// newClientApp builds the app for one CLI invocation. The session has to
// outlive the process, so an in-memory store is swapped for the session file.
func newClientApp() (*bootstrap.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []bootstrap.Option{bootstrap.WithLogOutput(os.Stderr)}
	if cfg.Session.Store == "" || cfg.Session.Store == "memory" {
		opts = append(opts, bootstrap.WithSessionStore("file"))
	}

	app, err := bootstrap.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}

// withApp runs fn against a fresh client app and prints its result as JSON.
func withApp(cmd *cobra.Command, fn func(app *bootstrap.App) (any, error)) error {
	app, err := newClientApp()
	if err != nil {
		return err
	}
	defer app.Close()

	out, err := fn(app)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}

// mockChangesNotice is printed by commands that modify data in mock mode. Each
// invocation seeds its own store, so the change dies with the process.
const mockChangesNotice = "mock mode: changes are not kept between commands; " +
	"run `hospital-dashboard serve` and point BACKEND_MODE=live, BACKEND_URL=http://localhost:<port>/api at it to keep them\n"

func warnNotKept(cmd *cobra.Command, app *bootstrap.App) {
	if app.Config.Backend.Mode.IsMock() {
		fmt.Fprint(cmd.ErrOrStderr(), mockChangesNotice)
	}
}
