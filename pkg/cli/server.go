package cli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iqrbr/iqr/pkg/logging"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 60
	serverMaxHeaderBytes      = 20
)

var (
	//go:embed assets/* templates/*
	embedFS embed.FS

	portFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "Port on which the server will listen (overrides IQR_PORT)",
	}

	noBrowserFlag = &cli.BoolFlag{
		Name:    "no-browser",
		Aliases: []string{"nb"},
		Usage:   "Do not open browser automatically",
	}

	serverCmd = &cli.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start local HTTP server with the evaluation form",
		Action:  cmdStartServer,
		Flags: []cli.Flag{
			portFlag,
			noBrowserFlag,
			debugFlag,
		},
	}
)

// serverConfig comes from the environment; flags win where both are set.
type serverConfig struct {
	Port      int    `env:"IQR_PORT" envDefault:"8080"`
	LogLevel  string `env:"IQR_LOG_LEVEL" envDefault:"info"`
	NoBrowser bool   `env:"IQR_NO_BROWSER"`
}

func loadServerConfig(c *cli.Context) (*serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing server env config: %w", err)
	}

	if c.IsSet(portFlag.Name) {
		cfg.Port = c.Int(portFlag.Name)
	}
	if c.Bool(noBrowserFlag.Name) {
		cfg.NoBrowser = true
	}
	if c.Bool(debugFlag.Name) {
		cfg.LogLevel = "debug"
	}
	return &cfg, nil
}

func cmdStartServer(c *cli.Context) error {
	applyFlags(c)

	cfg, err := loadServerConfig(c)
	if err != nil {
		return err
	}
	logging.SetDefault(cfg.LogLevel)

	address := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	s := &http.Server{
		Addr:           address,
		Handler:        makeRouter(),
		ReadTimeout:    serverTimeoutSeconds * time.Second,
		WriteTimeout:   serverTimeoutSeconds * time.Second,
		MaxHeaderBytes: 1 << serverMaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})

	url := fmt.Sprintf("http://%s", address)
	slog.Info("server started", "address", url)

	if !cfg.NoBrowser {
		openBrowser(url)
	}

	return g.Wait()
}

func makeRouter() *http.ServeMux {
	tmpl := template.Must(template.New("").ParseFS(embedFS, "templates/*.html"))

	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(embedFS)))
	mux.HandleFunc("GET /{$}", homeViewHandler(tmpl))

	mux.HandleFunc("POST /data/score", scoreAPIHandler)
	mux.HandleFunc("GET /data/classify", classifyAPIHandler)
	mux.HandleFunc("GET /data/references", referencesAPIHandler)

	return mux
}

func openBrowser(url string) {
	var cmd string
	args := make([]string, 0, 1)

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "linux":
		cmd = "xdg-open"
	default: // windows
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	}
	args = append(args, url)

	if err := exec.Command(cmd, args...).Start(); err != nil {
		slog.Debug("error opening browser", "error", err)
	}
}
