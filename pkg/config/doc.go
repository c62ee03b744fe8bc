// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// values are read from an optional `.env` file in the working directory
// (loaded at most once per process), then parsed into any Go struct via
// `env` field tags.
//
// # Usage
//
//	type Config struct {
//	    Count      int    `env:"SCRAMBLER_COUNT" envDefault:"10"`
//	    ExportFile string `env:"SCRAMBLER_EXPORT_FILE" envDefault:"alias-seeds.txt"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into the struct.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
package config
