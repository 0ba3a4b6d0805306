package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/feedpulse/pulse/pkg/config"
	"github.com/feedpulse/pulse/pkg/fetcher"
	"github.com/feedpulse/pulse/pkg/repository"
	"github.com/feedpulse/pulse/pkg/scheduler"
	"github.com/feedpulse/pulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	Once   bool  `long:"once" description:"run one fetch cycle for all tenants and exit"`
	Tenant int64 `long:"tenant" description:"run one fetch cycle for the given tenant and exit"`
	Stats  bool  `long:"stats" description:"print fetch statistics and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run loads the config, wires dependencies and executes the requested mode:
// a one-shot fetch (--once, --tenant), stats printout (--stats), or the
// long-running scheduler plus HTTP server.
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	client := fetcher.NewClient(cfg.Fetch.ServiceURL, cfg.Fetch.Timeout)

	sched := scheduler.NewScheduler(scheduler.Params{
		TenantManager:  repos.Tenant,
		SourceManager:  repos.Source,
		ItemManager:    repos.Item,
		Fetcher:        client,
		UpdateInterval: time.Duration(cfg.Schedule.UpdateInterval) * time.Minute,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
		RetentionDays:  cfg.Retention.Days,
		ServiceURL:     cfg.Fetch.ServiceURL,
	})

	// one-shot modes bypass the server and the periodic loop
	switch {
	case opts.Stats:
		return printStats(ctx, sched)
	case opts.Tenant != 0:
		log.Printf("[INFO] running fetch cycle for tenant %d", opts.Tenant)
		return sched.RunForTenant(ctx, opts.Tenant)
	case opts.Once:
		log.Printf("[INFO] running fetch cycle for all tenants")
		return sched.RunForAllTenants(ctx)
	}

	log.Printf("[INFO] starting pulse version %s", revision)

	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		Version: revision,
		Debug:   opts.Debug,
	}, sched, repos.Source, repos.Tenant)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	log.Print("[INFO] shutdown complete")
	return nil
}

func printStats(ctx context.Context, sched *scheduler.Scheduler) error {
	stats, err := sched.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	fmt.Printf("tenants:              %d\n", stats.Tenants)
	fmt.Printf("tenants with sources: %d\n", stats.TenantsWithSources)
	fmt.Printf("total items:          %d\n", stats.TotalItems)
	fmt.Printf("items last 24h:       %d\n", stats.RecentItems)
	fmt.Printf("fetch service:        %s\n", stats.ServiceURL)
	fmt.Printf("retention days:       %d\n", stats.RetentionDays)
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
