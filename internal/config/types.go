package config

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	// Content is the content document source: a local path or an http(s) URL.
	Content string `yaml:"content" koanf:"content"`
	// OutputDir is where the generated site is written.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// StaticDir holds assets (images, resume) copied into the output.
	StaticDir string `yaml:"static_dir" koanf:"static_dir"`
	// DataDir holds the SQLite database for contact messages.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`

	Server ServerConfig `yaml:"server" koanf:"server"`
	Reveal RevealConfig `yaml:"reveal" koanf:"reveal"`
	Form   FormConfig   `yaml:"form" koanf:"form"`

	// ToastDurationMS is how long a toast stays visible before auto-hiding.
	ToastDurationMS int `yaml:"toast_duration_ms" koanf:"toast_duration_ms"`
}

// ServerConfig holds HTTP server settings for `folio serve`.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// RevealConfig tunes the scroll-reveal observer emitted into the page script.
type RevealConfig struct {
	// Threshold is the visibility fraction at which a section counts as in view.
	Threshold float64 `yaml:"threshold" koanf:"threshold"`
	// Margin is the root margin offset applied to the observer viewport.
	Margin string `yaml:"margin" koanf:"margin"`
	// InitialDelayMS delays the load-time visibility pass so layout can settle.
	InitialDelayMS int `yaml:"initial_delay_ms" koanf:"initial_delay_ms"`
}

// FormConfig holds contact-form behavior not owned by the content document.
type FormConfig struct {
	// SimulateDelayMS is the fixed delay used when no relay endpoint is
	// configured and submissions are accepted locally.
	SimulateDelayMS int `yaml:"simulate_delay_ms" koanf:"simulate_delay_ms"`
	// TimeoutMS bounds the relay POST to the configured endpoint.
	TimeoutMS int `yaml:"timeout_ms" koanf:"timeout_ms"`
}
