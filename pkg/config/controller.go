package config

import (
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const EnvPrefix = "LAZYCART_"

// Controller holds flags/env values controlling the execution of lazycart.
type Controller struct {
	File     string `koanf:"file"`
	At       string `koanf:"at"`
	IndexOf  string `koanf:"index-of"`
	Samples  string `koanf:"samples"`
	Seed     string `koanf:"seed"`
	Color    bool   `koanf:"color"`
	Quiet    int    `koanf:"quiet"`
	Verbose  int    `koanf:"verbose"`
	LogLevel slog.Level
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// NewFlagSet declares the command line flags of lazycart.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("file", "f", "", "Path to the YAML or JSON product description. Use - for stdin.")
	flags.String("at", "", "Print the entry at this index.")
	flags.String("index-of", "", "Print the index of this entry, given as comma-separated components in axis order.")
	flags.StringP("samples", "n", "", "Print this many distinct entries drawn uniformly at random.")
	flags.String("seed", "", "Seed for reproducible sampling. The secure system generator is used when empty.")
	flags.Bool("color", defaultColor(), "Force color output.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
	flags.BoolP("help", "?", false, "Show this help message and exit.")
	return flags
}

func defaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// LoadController layers defaults, LAZYCART_* environment variables and parsed flags, the latter
// taking precedence.
func LoadController(flags *pflag.FlagSet) (controller Controller, err error) {
	k := koanf.New(".")

	_ = k.Load(confmap.Provider(map[string]any{
		"color":   defaultColor(),
		"quiet":   0,
		"verbose": 0,
	}, k.Delim()), nil)

	_ = k.Load(env.Provider(EnvPrefix, k.Delim(), func(key string) string {
		slog.Debug("Loading environment var.", "var", key)
		// e.g. LAZYCART_INDEX_OF -> index-of
		key = strings.TrimPrefix(key, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil)

	if err := k.Load(posflag.Provider(flags, k.Delim(), k), nil); err != nil {
		return controller, fmt.Errorf("cannot load flags: %w", err)
	}

	if err := k.Unmarshal("", &controller); err != nil {
		return controller, fmt.Errorf("invalid configuration: %w", err)
	}

	// Default log level is INFO, which index is 1.
	levelIndex := 1 - controller.Verbose + controller.Quiet
	levelIndex = int(math.Max(0, float64(levelIndex)))
	levelIndex = int(math.Min(float64(levelIndex), float64(len(levels)-1)))
	controller.LogLevel = levels[levelIndex]

	return controller, controller.validate()
}

func (controller Controller) validate() error {
	if controller.File == "" {
		return fmt.Errorf("a product file must be specified")
	}

	actions := 0
	for _, action := range []string{controller.At, controller.IndexOf, controller.Samples} {
		if action != "" {
			actions++
		}
	}
	if actions > 1 {
		return fmt.Errorf("--at, --index-of and --samples are mutually exclusive")
	}

	if controller.At != "" {
		if _, err := controller.Index(); err != nil {
			return err
		}
	}
	if controller.Samples != "" {
		if _, err := controller.SampleSize(); err != nil {
			return err
		}
	}
	if controller.Seed != "" {
		if _, err := strconv.ParseUint(controller.Seed, 10, 64); err != nil {
			return fmt.Errorf("seed must be an unsigned 64-bit integer: %v", controller.Seed)
		}
	}
	return nil
}

// Index parses --at as an arbitrary-precision integer.
func (controller Controller) Index() (*big.Int, error) {
	index, ok := new(big.Int).SetString(controller.At, 10)
	if !ok {
		return nil, fmt.Errorf("index must be an integer: %v", controller.At)
	}
	return index, nil
}

// SampleSize parses --samples as an arbitrary-precision integer.
func (controller Controller) SampleSize() (*big.Int, error) {
	size, ok := new(big.Int).SetString(controller.Samples, 10)
	if !ok {
		return nil, fmt.Errorf("sample size must be an integer: %v", controller.Samples)
	}
	return size, nil
}

// Components splits --index-of into one textual component per axis.
func (controller Controller) Components() []string {
	return strings.Split(controller.IndexOf, ",")
}
