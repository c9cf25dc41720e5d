package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/limaJavier/lazycart/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// RangeSpec describes the integer axis [From, To). Bounds are decimal strings so they may exceed
// native integer range.
type RangeSpec struct {
	From string
	To   string
}

type AxisSpec struct {
	Name   string
	Values []string
	Range  *RangeSpec
}

// ProductSpec is the content of a product description file.
type ProductSpec struct {
	Axes []AxisSpec
}

// Described is a product built from a ProductSpec, together with what is needed to parse and
// print its entries.
type Described struct {
	*model.Product
	Names  []string
	ranged []bool
}

// LoadProductFile reads a JSON or YAML product description. YAML is assumed unless the file has a
// .json extension; "-" reads from the standard input.
func LoadProductFile(path string) (ProductSpec, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return ProductSpec{}, fmt.Errorf("cannot read product file: %w", err)
	}

	slog.Debug("Decoding product file.", "path", path, "bytes", len(content))
	var raw map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.UseNumber() // Keeps big range bounds exact
		err = decoder.Decode(&raw)
	} else {
		err = yaml.Unmarshal(content, &raw)
	}
	if err != nil {
		return ProductSpec{}, fmt.Errorf("cannot parse product file: %w", err)
	}

	return DecodeProduct(raw)
}

// DecodeProduct decodes and validates a generic map into a ProductSpec.
func DecodeProduct(raw map[string]any) (ProductSpec, error) {
	var spec ProductSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return ProductSpec{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return ProductSpec{}, fmt.Errorf("invalid product description: %w", err)
	}
	return spec, spec.Validate()
}

// Validate checks that the description yields a well-formed product.
func (spec ProductSpec) Validate() error {
	if len(spec.Axes) == 0 {
		return errors.New("product description must declare at least one axis")
	}

	names := mapset.NewThreadUnsafeSet[string]()
	for i, axis := range spec.Axes {
		if axis.Name == "" {
			return fmt.Errorf("axis %d has no name", i)
		}
		if !names.Add(axis.Name) {
			return fmt.Errorf("axis \"%v\" is declared more than once", axis.Name)
		}
		if (axis.Values == nil) == (axis.Range == nil) {
			return fmt.Errorf("axis \"%v\" must declare exactly one of values or range", axis.Name)
		}
		if axis.Range != nil {
			if _, _, err := axis.Range.bounds(); err != nil {
				return fmt.Errorf("axis \"%v\": %w", axis.Name, err)
			}
		}
	}
	return nil
}

func (spec RangeSpec) bounds() (from, to *big.Int, err error) {
	from, ok := new(big.Int).SetString(spec.From, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid range lower bound %q", spec.From)
	}
	to, ok = new(big.Int).SetString(spec.To, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid range upper bound %q", spec.To)
	}
	if to.Cmp(from) < 0 {
		return nil, nil, fmt.Errorf("range upper bound %v is smaller than lower bound %v", to, from)
	}
	return from, to, nil
}

// Build assembles the product. Value axes hold strings and range axes hold *big.Int.
func (spec ProductSpec) Build() (*Described, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	axes := lo.Map(spec.Axes, func(axis AxisSpec, _ int) model.AnyAxis {
		if axis.Range != nil {
			from, to, _ := axis.Range.bounds()
			return model.Erase[*big.Int](model.NewRangeAxis(from, to))
		}
		return model.Erase[string](model.NewSliceAxis(axis.Values...))
	})
	product, err := model.NewProduct(axes...)
	if err != nil {
		return nil, err
	}

	return &Described{
		Product: product,
		Names:   lo.Map(spec.Axes, func(axis AxisSpec, _ int) string { return axis.Name }),
		ranged:  lo.Map(spec.Axes, func(axis AxisSpec, _ int) bool { return axis.Range != nil }),
	}, nil
}

// ParseEntry converts textual components, one per axis, into an entry of the product.
func (d *Described) ParseEntry(fields []string) ([]any, error) {
	if len(fields) != len(d.Names) {
		return nil, fmt.Errorf("%w: got %d components for %d axes", model.ErrArityMismatch, len(fields), len(d.Names))
	}

	entry := make([]any, len(fields))
	for i, field := range fields {
		if !d.ranged[i] {
			entry[i] = field
			continue
		}
		value, ok := new(big.Int).SetString(strings.TrimSpace(field), 10)
		if !ok {
			return nil, fmt.Errorf("axis \"%v\" expects an integer: %q", d.Names[i], field)
		}
		entry[i] = value
	}
	return entry, nil
}

// Named pairs every component of entry with its axis name.
func (d *Described) Named(entry []any) map[string]string {
	named := make(map[string]string, len(entry))
	for i, component := range entry {
		named[d.Names[i]] = fmt.Sprint(component)
	}
	return named
}
