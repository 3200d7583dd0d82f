package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per configuration type.
var cache = struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}{values: make(map[reflect.Type]any)}

var defaultEnvLoaded sync.Once

// Load parses the environment into v according to its env tags. The first call for a type
// parses, later calls copy the cached value. The default .env file in the working directory is
// loaded once before the first parse when it exists; variables already set win over it.
//
//	type Config struct {
//		Language string `env:"VALIDATION_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload drops the cached value of T and parses the environment again.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cache.mu.Lock()
	delete(cache.values, reflect.TypeFor[T]())
	cache.mu.Unlock()
	return Load(v)
}

// LoadEnv loads the given .env files into the process environment, in order. Variables already
// set are not overridden. Missing files are an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every parsed configuration.
func ResetCache() {
	cache.mu.Lock()
	cache.values = make(map[reflect.Type]any)
	cache.mu.Unlock()
}
