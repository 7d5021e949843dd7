package script

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/placeview/pkg/errors"
)

const (
	// DefaultPath is the script used when no argument is given.
	DefaultPath = "./test/plotter_script.scr"

	// DefaultRoot is the directory holding one subdirectory per circuit.
	DefaultRoot = "./test"

	// Usage is the invocation shown on argument errors.
	Usage = "placeview [plot_script]"

	circuitKey = "circuit_path"
	detailKey  = "plot_all_detail"
	detailOn   = "Yes"
)

// Config names the two input files of a run and the display mode.
// It is built once per run and never modified.
type Config struct {
	DimensionsFile string `json:"dimensions_file"`
	PlacementFile  string `json:"placement_file"`
	DetailMode     bool   `json:"detail_mode"`
}

// Option configures script location and parsing.
type Option func(*options)

type options struct {
	root        string
	defaultPath string
}

// WithRoot sets the directory that circuit names are resolved against.
func WithRoot(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.root = strings.TrimSuffix(dir, "/")
		}
	}
}

// WithDefaultPath sets the script opened when Locate gets no arguments.
func WithDefaultPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.defaultPath = path
		}
	}
}

func newOptions(opts []Option) options {
	o := options{root: DefaultRoot, defaultPath: DefaultPath}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Locate resolves the plot script from command-line arguments and parses it.
// With no arguments the default script is used; with one the argument is the
// script path. It returns the parsed config and the script path that was read.
func Locate(args []string, opts ...Option) (Config, string, error) {
	o := newOptions(opts)

	var path string
	switch len(args) {
	case 0:
		path = o.defaultPath
		if !isFile(path) {
			return Config{}, path, errors.New(errors.ErrCodeConfigMissing, "default script missing: %s", path)
		}
	case 1:
		path = args[0]
		if !isFile(path) {
			return Config{}, path, errors.New(errors.ErrCodeConfigMissing, "%s script missing", path)
		}
	default:
		return Config{}, "", errors.New(errors.ErrCodeUsage, "too many arguments. Usage: %s", Usage)
	}

	cfg, err := ParseFile(path, opts...)
	return cfg, path, err
}

// ParseFile reads the script at path.
func ParseFile(path string, opts ...Option) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfigMissing, err, "open script %s", path)
	}
	defer f.Close()
	return Parse(f, opts...)
}

// Parse scans a script and derives the config. A script that never names a
// circuit yields empty file names; the caller finds out when opening them.
func Parse(r io.Reader, opts ...Option) (Config, error) {
	o := newOptions(opts)

	var cfg Config
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if name, ok := circuitName(line); ok {
			base := o.root + "/" + name + "/" + name
			cfg.DimensionsFile = base + ".nodes"
			cfg.PlacementFile = base + "_solution.pl"
		}
		if strings.Contains(line, detailKey) && strings.Contains(line, detailOn) {
			cfg.DetailMode = true
		}
	}
	if err := sc.Err(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read script")
	}
	return cfg, nil
}

// circuitName extracts the quoted name from a circuit_path line.
func circuitName(line string) (string, bool) {
	if !strings.Contains(line, circuitKey) || strings.Contains(line, "/") {
		return "", false
	}
	_, rest, ok := strings.Cut(line, `"`)
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, `"`)
	if !ok {
		return "", false
	}
	return name, true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
