// Package vizconfig loads the run configuration for the terminal front
// end: maze dimensions, seed, replay speed, and the algorithm line-up.
//
// The file format is YAML:
//
//	rows: 21
//	cols: 41
//	seed: 12345
//	speed: 60
//	algorithms: [BFS, A*, DFS]
//
// Missing fields fall back to defaults; a missing file is not an error
// (Load returns the defaults), because the front end is fully usable
// without any configuration.
package vizconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aneeshsunganahalli/PathVisualiser/replay"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadAlgorithm indicates an unknown algorithm name in the file.
	ErrBadAlgorithm = errors.New("vizconfig: unknown algorithm name")
	// ErrBadValue indicates a field outside its valid range.
	ErrBadValue = errors.New("vizconfig: value out of range")
)

// Default dimensions and speed for a fresh session.
const (
	DefaultRows  = 21
	DefaultCols  = 41
	DefaultSpeed = 50
)

// Config is the front end's run configuration.
type Config struct {
	// Rows and Cols are the maze dimensions (forced odd by mazegen).
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Seed fixes maze generation when non-zero; zero draws a fresh
	// high-entropy seed per regenerate.
	Seed int64 `yaml:"seed"`

	// Speed is the replay speed in [1,100].
	Speed int `yaml:"speed"`

	// Algorithms is the comparison line-up by display name
	// ("DFS", "BFS", "A*", "Weighted A*", "IDA*").
	Algorithms []string `yaml:"algorithms"`
}

// Default returns the configuration used when no file is present:
// a 21×41 unseeded maze at mid speed, comparing DFS, BFS and A*.
func Default() *Config {
	return &Config{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Speed:      DefaultSpeed,
		Algorithms: []string{"DFS", "BFS", "A*"},
	}
}

// Load reads the YAML file at path. A missing file yields Default();
// a present but malformed file is an error. Loaded values are validated
// and gaps are filled from Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("vizconfig: read %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("vizconfig: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and algorithm names.
func (c *Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("%w: rows/cols must be ≥ 3, got %d×%d", ErrBadValue, c.Rows, c.Cols)
	}
	if c.Speed < replay.MinSpeed || c.Speed > replay.MaxSpeed {
		return fmt.Errorf("%w: speed must be in [%d,%d], got %d",
			ErrBadValue, replay.MinSpeed, replay.MaxSpeed, c.Speed)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: at least one algorithm", ErrBadValue)
	}
	if _, err := c.Lineup(); err != nil {
		return err
	}

	return nil
}

// Lineup resolves the configured names to algorithm identifiers,
// preserving order.
func (c *Config) Lineup() ([]search.Algorithm, error) {
	lineup := make([]search.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		algo, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		lineup = append(lineup, algo)
	}

	return lineup, nil
}

// ParseAlgorithm maps a display name back to its identifier.
func ParseAlgorithm(name string) (search.Algorithm, error) {
	for a := search.Algorithm(0); a.Valid(); a++ {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, name)
}
