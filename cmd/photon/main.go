// Package main provides the photon CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/born-ml/photon/internal/component"
	"github.com/born-ml/photon/internal/config"
	"github.com/born-ml/photon/internal/optim"
	"github.com/born-ml/photon/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("photon: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "photon %s\n", version)
		return nil
	case "smatrix":
		return runSMatrix(ctx, args[1:], out)
	case "train":
		return runTrain(ctx, args[1:], out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "photon - differentiable photonic components")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version                               Show version")
	fmt.Fprintln(out, "  smatrix -config FILE [-load FILE]     Print component scattering matrices")
	fmt.Fprintln(out, "  train   -config FILE [-state FILE]    Fit the training target, optionally saving state")
}

func loadSetup(path, statePath string) (*config.Setup, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -config is required", errUsage)
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := f.Build()
	if err != nil {
		return nil, err
	}
	if statePath != "" {
		if err := config.LoadState(statePath, s.Components...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func runSMatrix(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("smatrix", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "circuit YAML file")
	statePath := fs.String("load", "", "optional state file to restore before printing")
	workers := fs.Int("workers", 0, "evaluation goroutines (0 = one per CPU)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	s, err := loadSetup(*cfgPath, *statePath)
	if err != nil {
		return err
	}

	pcfg := parallel.DefaultConfig()
	if *workers > 0 {
		pcfg.NumWorkers = *workers
		pcfg.Enabled = *workers > 1
	}
	results, err := component.Evaluate(ctx, s.Env, s.Components, pcfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%v\n", s.Env)
	for i, c := range s.Components {
		rS, iS := results[i].RealS, results[i].ImagS
		fmt.Fprintf(out, "\n%s (%d ports, lossless=%t)\n", c.Name(), c.NumPorts(), component.Lossless(rS, iS, 1e-9))
		for _, p := range c.Parameters() {
			fmt.Fprintf(out, "  %v\n", p)
		}
		for w, wl := range s.Env.Wavelengths {
			fmt.Fprintf(out, "  λ=%.4g m\n", wl)
			fmt.Fprintf(out, "    Re S =\n%v\n", mat.Formatted(rS.Block(w), mat.Prefix("      "), mat.Squeeze()))
			fmt.Fprintf(out, "    Im S =\n%v\n", mat.Formatted(iS.Block(w), mat.Prefix("      "), mat.Squeeze()))
		}
	}
	return nil
}

func runTrain(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "circuit YAML file with a training section")
	statePath := fs.String("state", "", "write trained parameter values to this YAML file")
	quiet := fs.Bool("quiet", false, "suppress progress output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	s, err := loadSetup(*cfgPath, "")
	if err != nil {
		return err
	}
	c, target, err := s.Target()
	if err != nil {
		return err
	}
	opt, err := s.Training.NewOptimizer(c.Parameters())
	if err != nil {
		return err
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(out, format+"\n", args...)
	}
	if *quiet {
		logf = nil
	}

	res, err := optim.Fit(ctx, c, s.Env, target, opt, s.Training.FitConfig(logf))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d steps, loss %.3e, converged=%t\n", c.Name(), res.Steps, res.Loss, res.Converged)
	for _, p := range c.Parameters() {
		fmt.Fprintf(out, "  %v\n", p)
	}

	if *statePath != "" {
		if err := config.SaveState(*statePath, s.Components...); err != nil {
			return err
		}
		fmt.Fprintf(out, "state written to %s\n", *statePath)
	}
	return nil
}
