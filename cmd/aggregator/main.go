package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"jobmatch/internal/aggregator"
	"jobmatch/internal/app"
	"jobmatch/internal/config"
	"jobmatch/internal/repository"
)

func main() {
	sources := flag.String("sources", "all", "comma-separated board names (remotive,remoteok,golangcafe) or 'all'")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	fetchers, err := selectFetchers(*sources)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	jobs := repository.NewPostgresJobRepository(c.DB)
	agg := aggregator.New(jobs, c.Cache, cfg.Aggregator, c.Logger)
	stats, err := agg.Run(ctx, fetchers)
	if err != nil {
		log.Fatalf("aggregation failed: %v", err)
	}

	out, _ := json.Marshal(stats)
	log.Printf("aggregation done: %s", out)
}

func selectFetchers(spec string) ([]aggregator.Fetcher, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" || spec == "all" {
		return aggregator.DefaultFetchers(), nil
	}

	byName := map[string]aggregator.Fetcher{}
	for _, f := range aggregator.DefaultFetchers() {
		byName[f.Name()] = f
	}

	var out []aggregator.Fetcher
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
		out = append(out, f)
	}
	return out, nil
}
