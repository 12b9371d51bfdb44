// Package config loads typed configuration structs from environment
// variables, with optional .env support for local development.
//
// Each configuration type is parsed at most once per process; repeated
// Load calls for the same type are no-ops that return the cached value,
// so setup code can be called from multiple places without re-reading
// the environment.
//
//	type ServerConfig struct {
//	    Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
