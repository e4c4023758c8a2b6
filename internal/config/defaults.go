package config

// DefaultExcludes are glob patterns skipped when copying static assets.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"*.psd",
	"*.sketch",
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Content:   "content.json",
		OutputDir: "public",
		StaticDir: "static",
		DataDir:   ".folio",
		Include:   []string{"**"},
		Exclude:   DefaultExcludes,
		Server: ServerConfig{
			Port: 8080,
		},
		Reveal: RevealConfig{
			Threshold:      0.15,
			Margin:         "0px 0px -10% 0px",
			InitialDelayMS: 100,
		},
		Form: FormConfig{
			SimulateDelayMS: 1200,
			TimeoutMS:       10000,
		},
		ToastDurationMS: 4000,
	}
}
