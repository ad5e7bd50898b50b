// Command aria analyzes a web page for WCAG 2.1 AA accessibility issues,
// either as a one-shot CLI run printing a JSON report or as an HTTP API
// server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/raysh454/aria/internal/analyzer"
	"github.com/raysh454/aria/internal/cli"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/logging"
	"github.com/raysh454/aria/internal/model"
	"github.com/raysh454/aria/internal/server"
	"github.com/raysh454/aria/internal/suggest"
	"github.com/raysh454/aria/internal/utils"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "aria: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewStdoutLogger("aria")

	if args.Serve {
		os.Exit(runServer(args, logger))
	}
	os.Exit(runOnce(args, logger))
}

func runServer(args *cli.CLIArgs, logger interfaces.Logger) int {
	cfg := server.DefaultConfig()
	cfg.ListenAddr = args.Addr
	cfg.Logger = logger
	if args.Timeout > 0 {
		cfg.AnalyzerConfig.Loader.NavigationTimeout = args.Timeout
	}
	applyAIFlags(&cfg.SuggestConfig, args)

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Error("creating server", interfaces.Field{Key: "error", Value: err.Error()})
		return 1
	}
	defer srv.Close()

	httpSrv := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()

	logger.Info("listening", interfaces.Field{Key: "addr", Value: args.Addr})
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", interfaces.Field{Key: "error", Value: err.Error()})
		return 1
	}
	return 0
}

func runOnce(args *cli.CLIArgs, logger interfaces.Logger) int {
	target, err := utils.NormalizeTarget(args.URL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aria: invalid url %q: %v\n", args.URL, err)
		return 2
	}

	cfg := analyzer.DefaultConfig()
	if args.Timeout > 0 {
		cfg.Loader.NavigationTimeout = args.Timeout
	}

	az, err := analyzer.NewDefaultAnalyzer(cfg, nil, logger)
	if err != nil {
		logger.Error("creating analyzer", interfaces.Field{Key: "error", Value: err.Error()})
		return 1
	}
	defer az.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := az.Analyze(ctx, target)
	if err != nil {
		logger.Error("analysis failed",
			interfaces.Field{Key: "url", Value: target},
			interfaces.Field{Key: "error", Value: err.Error()})
		return 1
	}

	var suggestions []model.Suggestion
	if args.Suggest {
		sgCfg := suggest.DefaultConfig()
		applyAIFlags(&sgCfg, args)
		gw, err := suggest.NewGateway(sgCfg, logger)
		if err != nil {
			logger.Error("creating suggestion gateway", interfaces.Field{Key: "error", Value: err.Error()})
			return 1
		}
		defer gw.Close()
		suggestions = gw.SuggestBatch(ctx, report)
	}

	out := struct {
		*model.AnalysisReport
		Suggestions []model.Suggestion `json:"suggestions,omitempty"`
	}{report, suggestions}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding report", interfaces.Field{Key: "error", Value: err.Error()})
		return 1
	}
	return 0
}

func applyAIFlags(cfg *suggest.Config, args *cli.CLIArgs) {
	if args.AIKey != "" {
		cfg.AIEnabled = true
		cfg.APIKey = args.AIKey
	}
	if args.AIModel != "" {
		cfg.Model = args.AIModel
	}
}
