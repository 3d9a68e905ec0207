package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "treekit.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "treekit.yml"

// envPrefix namespaces environment overrides. Nested keys use a double
// underscore: TREEKIT_PLUGINS__myplugin__RETRY=5.
const envPrefix = "TREEKIT_"

// Load reads a Config from the given file, then applies TREEKIT_ env
// overrides. Precedence (highest to lowest): env vars > config file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return finishLoad(k)
}

// LoadMap reads a Config from an in-memory map, useful for embedders that
// assemble configuration programmatically. Keys use "." as the nesting
// delimiter, e.g. "plugins.expand.retry".
func LoadMap(values map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load config map: %w", err)
	}
	return finishLoad(k)
}

// LoadFromDir loads a Config from treekit.yaml or treekit.yml in dir.
// Returns nil, nil when no config file is present (not an error
// condition).
func LoadFromDir(dir string) (*Config, error) {
	path := findConfigFile(dir)
	if path == "" {
		return nil, nil
	}
	return Load(path)
}

func finishLoad(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Plugins == nil {
		cfg.Plugins = make(map[string]PluginConfig)
	}
	return &cfg, nil
}

func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}
