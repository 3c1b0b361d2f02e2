package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".aoc.yaml"

// Config says where puzzle inputs come from and where they are cached.
type Config struct {
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// CacheDir is where inputs and descriptions are stored, as
	// <year>/<day>.input and <year>/<day>.html.
	CacheDir string `yaml:"cache_dir"`
	BaseURL  string `yaml:"base_url"`
}

func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SessionFile: filepath.Join(home, "keys", "aoc.session"),
		CacheDir:    ".",
		BaseURL:     "https://adventofcode.com",
	}
}

// LoadConfig reads the YAML config at path on top of DefaultConfig. An empty
// path means .aoc.yaml in the working directory, which may be absent.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	optional := path == ""
	if optional {
		path = defaultConfigFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) cachePath(year, day int, ext string) string {
	return filepath.Join(c.CacheDir, strconv.Itoa(year), fmt.Sprintf("%d.%s", day, ext))
}

func (c Config) dayURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d", c.BaseURL, year, day)
}
