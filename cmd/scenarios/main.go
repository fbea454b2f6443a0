package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"myregistry/scenario"
)

const defaultRegistry = "http://localhost:8080"

// Exit codes.
const (
	exitPassed = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	cfg := &scenario.Config{}
	list := flag.Bool("list", false, "list available scenarios and exit")
	name := flag.String("scenario", "", "scenario to run (or pass as positional arg)")
	flag.StringVar(&cfg.RegistryURL, "registry", "", "registry base URL (default: REGISTRY_URL env or "+defaultRegistry+")")
	flag.DurationVar(&cfg.LivenessTimeout, "liveness-timeout", 90*time.Second, "liveness timeout configured on the registry")
	flag.DurationVar(&cfg.SweepInterval, "sweep-interval", 30*time.Second, "sweep interval configured on the registry")
	flag.DurationVar(&cfg.HeartbeatInterval, "heartbeat-interval", 2*time.Second, "heartbeat interval for sender scenarios")
	flag.DurationVar(&cfg.PollInterval, "poll-interval", time.Second, "how often to poll GET /services while waiting")
	flag.Parse()

	if *list {
		for _, s := range scenario.All() {
			fmt.Printf("%-30s %s\n", s.Name, s.Description)
		}
		os.Exit(exitPassed)
	}

	cfg.RegistryURL = firstNonEmpty(cfg.RegistryURL, os.Getenv("REGISTRY_URL"), defaultRegistry)
	if *name == "" && flag.NArg() > 0 {
		*name = flag.Arg(0)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: scenarios [--list] [--registry=URL] [--liveness-timeout=D] [--sweep-interval=D] [--heartbeat-interval=D] [--poll-interval=D] [--scenario=NAME | NAME]")
		os.Exit(exitUsage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.EvictionDeadline()+time.Minute)
	start := time.Now()
	err := scenario.Run(ctx, *name, cfg)
	cancel()

	os.Exit(report(*name, time.Since(start), err))
}

// report prints the result block and returns the exit code.
func report(name string, took time.Duration, err error) int {
	fmt.Println("\n=== Scenario Result ===")
	fmt.Printf("Scenario: %s\n", name)
	fmt.Printf("Duration: %s\n", took.Round(time.Millisecond))
	defer fmt.Println("=======================")

	if err == nil {
		fmt.Println("Status: PASSED")
		return exitPassed
	}
	fmt.Println("Status: FAILED")
	fmt.Printf("Error: %v\n", err)

	var unknown *scenario.UnknownScenarioError
	if errors.As(err, &unknown) {
		fmt.Fprintf(os.Stderr, "available scenarios: %s\n", strings.Join(scenario.Names(), ", "))
		return exitUsage
	}
	return exitFailed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
