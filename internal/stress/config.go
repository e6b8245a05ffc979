package stress

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls one harness run.
type Config struct {
	// Writers is the number of goroutines storing into the shared cell.
	Writers int

	// Readers is the number of goroutines loading from the shared cell.
	Readers int

	// Iterations is the number of stores each writer performs.
	Iterations int

	// Values holds the per-writer constants. Writer i stores Values[i].
	// Each writer needs a distinct value or torn observations cannot be
	// told apart from legitimate ones.
	Values []byte
}

// DefaultConfig returns a run that finishes in well under a second on any
// reasonable host while still giving each writer enough turns to collide.
func DefaultConfig() Config {
	return Config{
		Writers:    4,
		Readers:    2,
		Iterations: 50000,
		// Bit patterns chosen so that mixing any two produces a byte
		// outside the set.
		Values: []byte{0x0F, 0xF0, 0x55, 0xAA, 0x33, 0xCC, 0x66, 0x99},
	}
}

// stress run config.toml key mapping.
type fileConfig struct {
	Writers    int   `toml:"writers"`
	Readers    int   `toml:"readers"`
	Iterations int   `toml:"iterations"`
	Values     []int `toml:"values"`
}

// LoadConfig reads a TOML config file, overlaying it on DefaultConfig.
// Keys absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load stress config: %w", err)
	}

	if meta.IsDefined("writers") {
		cfg.Writers = raw.Writers
	}
	if meta.IsDefined("readers") {
		cfg.Readers = raw.Readers
	}
	if meta.IsDefined("iterations") {
		cfg.Iterations = raw.Iterations
	}
	if meta.IsDefined("values") {
		values := make([]byte, 0, len(raw.Values))
		for _, v := range raw.Values {
			if v < 0 || v > 255 {
				return Config{}, fmt.Errorf("stress config: value %d does not fit in one byte", v)
			}
			values = append(values, byte(v))
		}
		cfg.Values = values
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem that would make a run meaningless.
func (c Config) Validate() error {
	if c.Writers < 1 {
		return fmt.Errorf("stress config: writers = %d, need at least 1", c.Writers)
	}
	if c.Readers < 1 {
		return fmt.Errorf("stress config: readers = %d, need at least 1", c.Readers)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("stress config: iterations = %d, need at least 1", c.Iterations)
	}
	if len(c.Values) < c.Writers {
		return fmt.Errorf("stress config: %d writers but only %d values", c.Writers, len(c.Values))
	}
	seen := make(map[byte]int, c.Writers)
	for i, v := range c.Values[:c.Writers] {
		if j, dup := seen[v]; dup {
			return fmt.Errorf("stress config: writers %d and %d share value %#02x", j, i, v)
		}
		seen[v] = i
	}
	return nil
}
