package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLog       = flag.String("log", "", "Write a JSON log to this file")
	flagFormat    = flag.String("format", "", "Output format (gltf, glb, obj)")
	flagWireframe = flag.Bool("wireframe", false, "Decode meshes as wireframe line lists")
	flagOutDir    = flag.String("outdir", "", "Directory for converted files")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWireframe {
		cfg.Output.Topology = "lines"
	}
	if *flagOutDir != "" {
		cfg.Output.Dir = *flagOutDir
	}
}
