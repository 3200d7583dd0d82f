// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags and Load fills them,
// caching one parsed value per type. Variables can also come from .env files read with
// github.com/joho/godotenv: the default .env is read automatically, LoadEnv reads others.
//
//	config.MustLoadEnv("./deploy/validation.env")
//
//	var cfg validation.Config
//	config.MustLoad(&cfg)
//
// Reload and ResetCache bypass or clear the cache, mostly for tests that change the
// environment.
package config
