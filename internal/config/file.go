package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML configuration. Every field is optional; empty
// values leave the defaults untouched.
type File struct {
	Server struct {
		GinMode     string `yaml:"gin_mode"`
		TripsAddr   string `yaml:"trips_addr"`
		TravelAddr  string `yaml:"travel_addr"`
		AccountAddr string `yaml:"account_addr"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		TokenTTL  string `yaml:"token_ttl"`
	} `yaml:"auth"`
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (when non-empty), then environment variables.
func Load(path string) (Env, error) {
	env := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Env{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		f, err := ParseFile(data)
		if err != nil {
			return Env{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		env, err = f.Apply(env)
		if err != nil {
			return Env{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return ApplyEnv(env), nil
}

func ParseFile(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Apply overlays the non-empty values of f on env.
func (f File) Apply(env Env) (Env, error) {
	pick := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	pick(&env.GinMode, f.Server.GinMode)
	pick(&env.TripsAddr, f.Server.TripsAddr)
	pick(&env.TravelAddr, f.Server.TravelAddr)
	pick(&env.AccountAddr, f.Server.AccountAddr)
	pick(&env.LogLevel, f.Log.Level)
	pick(&env.LogFormat, f.Log.Format)
	pick(&env.AuthJWTSecret, f.Auth.JWTSecret)

	if origins := splitList(strings.Join(f.CORS.AllowedOrigins, ",")); len(origins) > 0 {
		env.CORSAllowedOrigins = origins
	}

	if raw := strings.TrimSpace(f.Auth.TokenTTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return env, fmt.Errorf("auth.token_ttl: invalid duration %q", raw)
		}
		env.AuthTokenTTL = ttl
	}
	return env, nil
}
