// Package main provides the CLI entry point for rvustruct.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rvustruct/internal/config"
	"github.com/ukaji3/rvustruct/internal/logging"
	"github.com/ukaji3/rvustruct/internal/server"
	"github.com/ukaji3/rvustruct/pkg/rvustruct"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/output"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/report"
)

var (
	configPath string
	layoutPath string
	lenient    bool
	outputPath string
	pretty     bool
	format     string
	department string
	addr       string
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rvustruct",
		Short: "Extract pre/post-RC RVU tables from a revenue export",
		Long: `rvustruct reads a fixed-layout revenue export (CSV or XLSX) and derives the
department summary, the E&M level breakdown and the per-service detail.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "YAML layout file (default: built-in revenue1-v1)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "Return empty tables instead of failing when a region starts past the end of the export")

	rootCmd.AddCommand(newExtractCmd(), newReportCmd(), newServeCmd())
	return rootCmd
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input]",
		Short: "Print the three tables as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [input]",
		Short: "Print the pre/post-RC summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReport,
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	cmd.Flags().StringVar(&department, "department", "", "Print the service drilldown of one department")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [input]",
		Short: "Serve the tables and report over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// setup loads configuration and returns the input path, extraction options and logger.
func setup(cmd *cobra.Command, args []string) (*config.Config, string, rvustruct.Options, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", rvustruct.Options{}, nil, err
	}

	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	inputPath := cfg.Data.Path
	if len(args) > 0 {
		inputPath = args[0]
	}

	opts := rvustruct.DefaultOptions()
	opts.Logger = logger

	lp := cfg.Data.LayoutFile
	if layoutPath != "" {
		lp = layoutPath
	}
	if lp != "" {
		layout, err := rvustruct.LoadLayout(lp)
		if err != nil {
			return nil, "", rvustruct.Options{}, nil, fmt.Errorf("failed to load layout: %w", err)
		}
		opts.Layout = layout
	}

	strict := cfg.Data.Strict && !lenient
	opts.Strict = &strict

	return cfg, inputPath, opts, logger, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, inputPath, opts, _, err := setup(cmd, args)
	if err != nil {
		return err
	}

	tables, err := rvustruct.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(tables, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	_, inputPath, opts, _, err := setup(cmd, args)
	if err != nil {
		return err
	}

	tables, err := rvustruct.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if department != "" {
		services := report.Drilldown(tables.Services, department)
		if len(services) == 0 {
			return fmt.Errorf("unknown department: %s", department)
		}
		if format == "json" {
			return writeJSON(out, services)
		}
		return output.WriteServices(out, department, services)
	}

	rep := report.Build(tables)
	switch format {
	case "json":
		return writeJSON(out, rep)
	case "text":
		return output.WriteReport(out, rep)
	default:
		return fmt.Errorf("invalid format: %s (must be text or json)", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, inputPath, opts, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}

	// Fail fast when the export is missing or no longer matches the layout.
	if _, err := rvustruct.Extract(inputPath, opts); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	durations := server.NewLoadDuration(registry)
	loader := rvustruct.NewLoader(opts, rvustruct.WithObserver(durations.Observer()))
	srv := server.New(inputPath, loader, logger, registry)

	listen := cfg.Server.Addr
	if addr != "" {
		listen = addr
	}
	httpServer := &http.Server{
		Addr:         listen,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving revenue report", slog.String("addr", listen), slog.String("file", inputPath))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
