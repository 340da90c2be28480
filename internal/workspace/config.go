package workspace

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when decksmith.yaml is absent or leaves fields empty.
const (
	DefaultTheme         = "acme_corp"
	DefaultAuthor        = "Decksmith"
	DefaultPDFCommand    = "decksmith-pdf"
	DefaultViewerCommand = "decksmith-viewer"
	DefaultViewerPort    = 8080
)

// Config is the flat workspace configuration.
// Note that the active theme of a project is never stored here: it is always
// derived from the project's theme folder.
type Config struct {
	Author       string       `yaml:"author,omitempty"`
	DefaultTheme string       `yaml:"default_theme,omitempty"`
	PDF          PDFConfig    `yaml:"pdf,omitempty"`
	Viewer       ViewerConfig `yaml:"viewer,omitempty"`
}

// PDFConfig configures the external PDF renderer.
// The command is invoked as: <command> <htmlSourceDir> <outputPath> <format>.
type PDFConfig struct {
	Command string `yaml:"command,omitempty"`
}

// ViewerConfig configures the external live-preview server.
// The command is invoked as: <command> <projectDir>, with PORT in the environment.
type ViewerConfig struct {
	Command string `yaml:"command,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// LoadConfig reads a workspace config file, applying defaults for anything
// unset. A missing file yields the pure-default config.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// WriteConfig writes the config to path as YAML.
func WriteConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Author == "" {
		c.Author = DefaultAuthor
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = DefaultTheme
	}
	if c.PDF.Command == "" {
		c.PDF.Command = DefaultPDFCommand
	}
	if c.Viewer.Command == "" {
		c.Viewer.Command = DefaultViewerCommand
	}
	if c.Viewer.Port == 0 {
		c.Viewer.Port = DefaultViewerPort
	}
}
