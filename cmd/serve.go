package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyboard/internal/config"
	"github.com/KaramelBytes/surveyboard/internal/dashboard"
	"github.com/KaramelBytes/surveyboard/internal/survey"
)

var (
	flagAddr    string
	flagDataDir string
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard pages over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.ListenAddr = flagAddr
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = flagDataDir
		}
		srv, err := newHTTPServer(cfg)
		if err != nil {
			return err
		}
		ln, err := net.Listen("tcp", cfg.ListenAddr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, srv, ln, cmd.OutOrStdout())
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides listen_addr)")
	serveCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "directory holding the survey files (overrides data_dir)")
	rootCmd.AddCommand(serveCmd)
}

func dashboardOptions(c *cfgpkg.Global) dashboard.Options {
	return dashboard.Options{
		GeneralPath: c.Path(c.GeneralFile),
		GroupPaths: map[string]string{
			"Q3": c.Path(c.Q3File),
			"Q4": c.Path(c.Q4File),
			"Q5": c.Path(c.Q5File),
		},
		Regions:       c.Regions,
		MaxQuestion:   c.MaxQuestion,
		Defaults:      survey.Filter{Year: c.SelectedYear, Region: c.SelectedRegion},
		SnapshotWidth: c.SnapshotWidth,
	}
}

func newHTTPServer(c *cfgpkg.Global) (*http.Server, error) {
	d, err := dashboard.New(dashboardOptions(c))
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              c.ListenAddr,
		Handler:           d.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       c.ReadTimeout(),
		WriteTimeout:      c.WriteTimeout(),
	}, nil
}

// runServer serves on ln until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, out io.Writer) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	successf(out, "Serving dashboards on http://%s", ln.Addr())
	slog.Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
