package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zalemm/pokerauditor/internal/api"
	"github.com/zalemm/pokerauditor/internal/config"
)

const (
	appName    = "PokerAuditor"
	appVersion = "1.0.0"
	appBanner  = `
  ____      _               _             _ _ _
 |  _ \ ___| | _____ _ __  / \  _   _  __| (_) |_ ___  _ __
 | |_) / _ \ |/ / _ \ '__|/ _ \| | | |/ _  | | __/ _ \| '__|
 |  __/ (_) |   <  __/ | / ___ \ |_| | (_| | | || (_) | |
 |_|   \___/|_|\_\___|_|/_/   \_\__,_|\__,_|_|\__\___/|_|

Mental-poker transcript auditor: deck and deal verification, hand scoring.
Version: %s
`
)

var (
	logLevel    = flag.String("log", "info", "Log level (debug, info, warn, error)")
	showVersion = flag.Bool("version", false, "Show version information")
	showHelp    = flag.Bool("help", false, "Show help")
	filePath    = flag.String("file", "", "Audit a single transcript JSON file and print the verdict")
	serve       = flag.Bool("serve", false, "Run the HTTP audit API")
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	logrus.SetOutput(os.Stdout)
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s\n", appName, appVersion)
		os.Exit(0)
	}
	if *showHelp {
		printBanner()
		flag.Usage()
		os.Exit(0)
	}
	printBanner()
	setLogLevel(*logLevel)

	cfg := config.LoadFromEnv()

	switch {
	case *filePath != "":
		if err := runFile(cfg, *filePath); err != nil {
			logrus.Fatalf("audit failed: %v", err)
		}
	case *serve:
		runServe(cfg)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func runFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var req api.AuditRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	verdict, err := api.AuditFile(&req, cfg)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runServe(cfg *config.Config) {
	handler := api.NewHandler(cfg)
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Routes(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go setupGracefulShutdown(server)

	logrus.WithField("addr", cfg.HTTPAddr).Info("auditor: HTTP API listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server failed: %v", err)
	}
}

func printBanner() {
	fmt.Printf(appBanner, appVersion)
	fmt.Println()
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("unknown log level %q, defaulting to info", level)
	}
}

func setupGracefulShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logrus.Infof("received signal: %v, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	logrus.Info("shutdown complete")
}
