// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files,
// github.com/caarlos0/env/v11 for parsing and
// github.com/go-playground/validator/v10 for checking the parsed struct:
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	    MaxBytes int64  `env:"MAX_BYTES" envDefault:"1048576" validate:"gt=0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Each configuration type is parsed and validated once per process and then
// served from an in-memory cache. The optional default .env file is read the
// first time Load runs. LoadEnv reads explicit files; values already present in
// the process environment take precedence over file values.
//
// # Errors
//
//   - ErrParsingConfig: env.Parse failed (missing required var, bad type).
//   - ErrInvalidConfig: a `validate` tag rejected a value.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load.
//
// # Testing
//
// ResetCache clears the cache so the next Load re-reads the environment.
package config
