package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"

	"github.com/limaJavier/lazycart/pkg/config"
	"github.com/limaJavier/lazycart/pkg/model"
	"github.com/limaJavier/lazycart/pkg/random"
	"github.com/lithammer/dedent"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = 0
	exitUsage   = 1
	exitDomain  = 2
)

var domainErrors = []error{
	model.ErrIndexOutOfRange,
	model.ErrEntryNotFound,
	model.ErrSampleSizeExceedsCapacity,
	model.ErrNegativeSampleSize,
	model.ErrArityMismatch,
}

// exitError carries the process exit code so that deferred functions run before exiting.
type exitError struct {
	code int
	err  error
}

func (err exitError) Error() string {
	return err.err.Error()
}

func (err exitError) Unwrap() error {
	return err.err
}

func main() {
	flags := config.NewFlagSet(os.Args[0])
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s --file PRODUCT [--at INDEX | --index-of V1,V2,... | --samples N [--seed S]]\n\n", os.Args[0])
		flags.PrintDefaults()
		fmt.Fprint(os.Stderr, dedent.Dedent(`

		Without an action, lazycart prints the number of entries of the product.
		Every flag can also be set through a LAZYCART_ environment variable,
		e.g. LAZYCART_INDEX_OF=red,2.
		`))
	}

	err := flags.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) || lo.Must(flags.GetBool("help")) {
		flags.Usage()
		os.Exit(exitSuccess)
	} else if err != nil {
		os.Exit(exitUsage)
	}

	// Extract configuration
	controller, err := config.LoadController(flags)
	config.SetLoggingHandler(controller.LogLevel, controller.Color)
	if err != nil {
		slog.Error("Invalid configuration.", "err", err)
		os.Exit(exitUsage)
	}

	if err := run(controller, os.Stdout); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			slog.Error("Execution failed.", "err", exit.err)
			os.Exit(exit.code)
		}
		slog.Error("Execution failed.", "err", err)
		os.Exit(exitUsage)
	}
}

func run(controller config.Controller, out io.Writer) error {
	spec, err := config.LoadProductFile(controller.File)
	if err != nil {
		return exitError{code: exitUsage, err: err}
	}
	product, err := spec.Build()
	if err != nil {
		return exitError{code: exitUsage, err: err}
	}
	slog.Debug("Product built.", "axes", product.Names, "size", product.Size())

	encoder := json.NewEncoder(out)
	switch {
	case controller.At != "":
		index := lo.Must(controller.Index()) // Validated by LoadController
		entry, err := product.AtIndex(index)
		if err != nil {
			return domainError(err)
		}
		return encoder.Encode(product.Named(entry))

	case controller.IndexOf != "":
		entry, err := product.ParseEntry(controller.Components())
		if err != nil {
			return domainError(err)
		}
		index, err := product.IndexOf(entry)
		if err != nil {
			return domainError(err)
		}
		_, err = fmt.Fprintln(out, index)
		return err

	case controller.Samples != "":
		sampleSize := lo.Must(controller.SampleSize())
		samples, err := product.GenerateSamples(sampleSize, newSource(controller.Seed))
		if err != nil {
			return domainError(err)
		}
		warnWhenCrowded(product.Size(), sampleSize)
		for entry := range samples {
			if err := encoder.Encode(product.Named(entry)); err != nil {
				return err
			}
		}
		return nil

	default:
		_, err = fmt.Fprintln(out, product.Size())
		return err
	}
}

func newSource(seed string) random.Source {
	if seed == "" {
		return random.NewCryptoSource()
	}
	return random.NewSeededSourceFromUint64(lo.Must(strconv.ParseUint(seed, 10, 64)))
}

// warnWhenCrowded reports sample sizes above half of the product, where redraws dominate.
func warnWhenCrowded(size, sampleSize *big.Int) {
	doubled := new(big.Int).Lsh(sampleSize, 1)
	if size.Sign() > 0 && doubled.Cmp(size) > 0 {
		slog.Warn("Sample size is close to product size, sampling will redraw often.", "size", size, "samples", sampleSize)
	}
}

func domainError(err error) error {
	if lo.ContainsBy(domainErrors, func(target error) bool { return errors.Is(err, target) }) {
		return exitError{code: exitDomain, err: err}
	}
	return exitError{code: exitUsage, err: err}
}
