package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tools holds the external commands the splitter invokes. Overriding a
// command lets tests and unusual installs point at alternate binaries.
type Tools struct {
	Flac     string `yaml:"flac"`
	Metaflac string `yaml:"metaflac"`
	Oggenc   string `yaml:"oggenc"`
	Lame     string `yaml:"lame"`
}

// Encoding holds the fixed quality settings passed to the encoders.
type Encoding struct {
	// FlacCompression is flac's 0-8 compression level; 0 means default.
	FlacCompression int `yaml:"flac_compression"`
	// OggQuality is oggenc's -q level; 0 means default.
	OggQuality int `yaml:"ogg_quality"`
	// MP3VBRQuality is lame's -V level, where 0 is highest quality.
	MP3VBRQuality int `yaml:"mp3_vbr_quality"`
}

type Config struct {
	LogLevel  int      `yaml:"log_level"`
	OutputDir string   `yaml:"output_dir"`
	Tools     Tools    `yaml:"tools"`
	Encoding  Encoding `yaml:"encoding"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Tools: Tools{
			Flac:     "flac",
			Metaflac: "metaflac",
			Oggenc:   "oggenc",
			Lame:     "lame",
		},
		Encoding: Encoding{
			FlacCompression: 8,
			OggQuality:      10,
			MP3VBRQuality:   0,
		},
	}
}

// Load reads the YAML config at path and fills in defaults for unset
// fields. A missing file is not an error: the tool runs with pure
// defaults when no config was written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Set defaults if not provided
	defaults := Default()
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if config.Tools.Flac == "" {
		config.Tools.Flac = defaults.Tools.Flac
	}
	if config.Tools.Metaflac == "" {
		config.Tools.Metaflac = defaults.Tools.Metaflac
	}
	if config.Tools.Oggenc == "" {
		config.Tools.Oggenc = defaults.Tools.Oggenc
	}
	if config.Tools.Lame == "" {
		config.Tools.Lame = defaults.Tools.Lame
	}
	if config.Encoding.FlacCompression == 0 {
		config.Encoding.FlacCompression = defaults.Encoding.FlacCompression
	}
	if config.Encoding.OggQuality == 0 {
		config.Encoding.OggQuality = defaults.Encoding.OggQuality
	}

	return config, nil
}
