package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jinchengKuang/jay-kuang/internal/contact"
	"github.com/jinchengKuang/jay-kuang/internal/db"
	"github.com/jinchengKuang/jay-kuang/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it with the contact API",
	Long: `Builds the site, then serves it over HTTP. The contact form posts to
the local API, which stores messages and relays them to the form action
configured in the content document (or accepts them locally when no
action is set). With --watch, content and static changes rebuild the
site and live-reload connected pages.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured server port")
	serveCmd.Flags().Bool("watch", false, "rebuild and live-reload on content changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")

	// The served page posts to the local contact API.
	opts := buildOpts(cfg, "/api/contact", watch)

	doc, n, err := runBuild(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Site generated: %s (%d sections)\n", cfg.OutputDir, n)

	// The relay target and toast copy come from the content document.
	var (
		action string
		toasts = contact.Toasts{
			Success: "Message sent. Thank you!",
			Error:   "Could not send your message. Please try again.",
		}
	)
	if doc.Contact != nil && doc.Contact.Form != nil {
		action = doc.Contact.Form.Action
		if doc.Contact.Form.SuccessMessage != "" {
			toasts.Success = doc.Contact.Form.SuccessMessage
		}
		if doc.Contact.Form.ErrorMessage != "" {
			toasts.Error = doc.Contact.Form.ErrorMessage
		}
	}

	database, err := db.Open(filepath.Join(cfg.DataDir, "folio.db"))
	if err != nil {
		return err
	}
	defer database.Close()

	submitter := &contact.Submitter{
		Action:        action,
		Timeout:       time.Duration(cfg.Form.TimeoutMS) * time.Millisecond,
		SimulateDelay: time.Duration(cfg.Form.SimulateDelayMS) * time.Millisecond,
	}

	var hub *server.ReloadHub
	if watch {
		hub = server.NewReloadHub()
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		SiteDir:  cfg.OutputDir,
		AllowAll: cfg.Server.AllowAll,
	}, contact.NewStore(database), submitter, toasts, hub)

	if watch {
		stop := make(chan struct{})
		defer close(stop)

		watchPaths := []string{cfg.StaticDir}
		// A remote content URL cannot be watched; only file sources are.
		if _, statErr := os.Stat(cfg.Content); statErr == nil {
			watchPaths = append(watchPaths, cfg.Content)
		}

		go func() {
			rebuild := func() error {
				_, _, err := runBuild(context.Background(), cfg, opts)
				return err
			}
			if err := hub.Watch(watchPaths, rebuild, stop); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: watch disabled: %v\n", err)
			}
		}()
	}

	// Serve until interrupted, then drain connections.
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
