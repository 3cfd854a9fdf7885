package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelapi/internal/config"
	router "travelapi/internal/http"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		service    string
		configPath string
		addr       string
	)
	flagSet := pflag.NewFlagSet("travelapi", pflag.ContinueOnError)
	flagSet.StringVar(&service, "service", intconfig.ServiceAll, "service to run: trips, travel, account or all")
	flagSet.StringVar(&configPath, "config", "", "optional YAML config file")
	flagSet.StringVar(&addr, "addr", "", "listen address override (single service only)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	env, err := intconfig.Load(configPath)
	if err != nil {
		return err
	}

	selected, err := selectServices(service)
	if err != nil {
		return err
	}
	if addr != "" {
		if len(selected) != 1 {
			return fmt.Errorf("--addr requires a single --service")
		}
		env = env.WithAddr(selected[0], addr)
	}

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger := utils.NewLogger(env.LogLevel, env.LogFormat)
	defer func() { _ = logger.Sync() }()

	servers := make([]*http.Server, 0, len(selected))
	for _, name := range selected {
		r, err := router.NewRouter(name, env, router.Options{Logger: logger})
		if err != nil {
			return err
		}
		servers = append(servers, &http.Server{
			Addr:              env.AddrFor(name),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       20 * time.Second,
			WriteTimeout:      20 * time.Second,
			IdleTimeout:       60 * time.Second,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		srv, name := srv, selected[i]
		g.Go(func() error {
			logger.Info("server listening", zap.String("service", name), zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("servers stopped cleanly")
	return nil
}

func selectServices(service string) ([]string, error) {
	if service == intconfig.ServiceAll {
		return intconfig.Services, nil
	}
	for _, s := range intconfig.Services {
		if s == service {
			return []string{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown service %q", service)
}
