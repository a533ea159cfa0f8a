// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing file is fine),
// then env.Parse fills the struct from its `env` tags.
//
//	type FCMConfig struct {
//	    CredentialsFile string `env:"FCM_CREDENTIALS_FILE,required"`
//	    DeviceAPIURL    string `env:"DEVICE_API_URL" envDefault:"https://api.example.com"`
//	}
//
//	var cfg FCMConfig
//	config.MustLoad(&cfg)
//
// Load returns ErrParsingConfig joined with the underlying parse error;
// MustLoad panics instead, for configuration the process cannot start
// without.
package config
