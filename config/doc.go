// Package config provides configuration loading and validation for streamkit
// applications.
//
// It uses Viper to load configuration from files and environment variables,
// supporting YAML config files, .env files via godotenv, and environment
// variable overrides.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("my-app", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g., STREAM_AWAIT_TIMEOUT binds to stream.await_timeout).
package config
