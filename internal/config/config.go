// Package config handles tool configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Format   string `yaml:"format"`   // gltf, glb or obj
	Topology string `yaml:"topology"` // triangles or lines
	Dir      string `yaml:"dir"`      // empty means next to the input file
}

// AssetsConfig holds model lookup paths.
type AssetsConfig struct {
	SearchPaths []string `yaml:"search_paths"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:   "gltf",
			Topology: "triangles",
			Dir:      "",
		},
		Assets: AssetsConfig{
			SearchPaths: []string{"."},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
