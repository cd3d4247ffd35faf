package cli

// Config is read from the environment (and an optional .env file) on every
// command run. Flags given on the command line take precedence.
type Config struct {
	Env           string `env:"REGCHECK_ENV" envDefault:"development" validate:"oneof=development staging production dev stage prod"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	MaxInputBytes int64  `env:"REGCHECK_MAX_INPUT_BYTES" envDefault:"1048576" validate:"gt=0"`
	LegacyKeys    bool   `env:"REGCHECK_LEGACY_KEYS" envDefault:"true"`
}
