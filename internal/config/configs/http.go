package configs

// HTTP defines configuration for the report HTTP server. The server is
// optional: it only makes sense when the dataset has been loaded into
// PostgreSQL, since the report queries read from there.
type HTTP struct {
	// Enabled controls whether the report server is started after a run.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
