// Command mcmf routes the maximum number of units through a capacitated
// network at minimum total cost and prints a report.
//
// Usage:
//
//	mcmf [-scenario file.yaml] [-method label-correcting|potentials]
//	     [-max-iterations N] [-log-iterations N] [-log-level LEVEL] [-timeout D]
//
// Without -scenario the built-in seven-station railway problem is solved.
// Every flag can also be set through the matching MCMF_* environment variable
// or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mcmf/flow"
	"github.com/katalvlaran/mcmf/network"
	"github.com/katalvlaran/mcmf/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mcmf:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mcmf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := LoadConfig(fs, args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Str("run", uuid.NewString()).Logger()

	method, err := flow.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	problem := network.DefaultProblem()
	if cfg.Scenario != "" {
		if problem, err = network.LoadProblemFile(cfg.Scenario); err != nil {
			return err
		}
	}
	nw, err := network.Build(problem)
	if err != nil {
		return err
	}
	log.Info().
		Str("scenario", scenarioName(cfg.Scenario)).
		Int("nodes", len(problem.Nodes)).
		Int("vertices", nw.Graph.VertexCount()).
		Int("arcs", nw.Graph.ArcCount()).
		Str("method", method.String()).
		Msg("network built")

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	rep := report.New(stdout, nw.Names,
		report.WithLogger(log),
		report.WithIterationLimit(cfg.LogIterations))
	res, err := nw.Solve(flow.FlowOptions{
		Ctx:           ctx,
		Method:        method,
		MaxIterations: cfg.MaxIterations,
		OnAugment:     rep.Observe,
	})
	if err != nil {
		log.Error().Err(err).
			Int64("flow", res.Flow).
			Int("iterations", res.Iterations).
			Msg("solve stopped early")

		return err
	}
	if err = flow.SanityChecks.All(nw.Graph, nw.Source, nw.Sink); err != nil {
		return fmt.Errorf("result failed verification: %w", err)
	}

	return rep.Summary(res, nw.FlowArcs())
}

func scenarioName(path string) string {
	if path == "" {
		return "built-in"
	}

	return path
}
