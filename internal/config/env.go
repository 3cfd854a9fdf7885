package config

import (
	"os"
	"strings"
	"time"
)

// Service names accepted by --service and used to pick listen addresses.
const (
	ServiceTrips   = "trips"
	ServiceTravel  = "travel"
	ServiceAccount = "account"
	ServiceAll     = "all"
)

// Services lists every runnable service in start order.
var Services = []string{ServiceTrips, ServiceTravel, ServiceAccount}

type Env struct {
	GinMode   string
	LogLevel  string
	LogFormat string

	TripsAddr   string
	TravelAddr  string
	AccountAddr string

	CORSAllowedOrigins []string

	// AuthJWTSecret enables signed login tokens when non-empty.
	AuthJWTSecret string
	AuthTokenTTL  time.Duration
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Env {
	return Env{
		LogLevel:    "info",
		LogFormat:   "console",
		TripsAddr:   ":8001",
		TravelAddr:  ":8002",
		AccountAddr: ":8000",
		CORSAllowedOrigins: []string{
			"http://localhost:3001",
			"http://127.0.0.1:3001",
		},
		AuthTokenTTL: 24 * time.Hour,
	}
}

func LoadEnv() Env {
	return ApplyEnv(Defaults())
}

// ApplyEnv overlays environment variables on top of env.
func ApplyEnv(env Env) Env {
	setString(&env.GinMode, "GIN_MODE")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.LogFormat, "LOG_FORMAT")
	setString(&env.TripsAddr, "TRIPS_ADDR")
	setString(&env.TravelAddr, "TRAVEL_ADDR")
	setString(&env.AccountAddr, "ACCOUNT_ADDR")
	setString(&env.AuthJWTSecret, "AUTH_JWT_SECRET")

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		env.CORSAllowedOrigins = splitList(raw)
	}

	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			env.AuthTokenTTL = ttl
		}
	}

	return env
}

// AddrFor returns the listen address of a service, or "" for unknown names.
func (e Env) AddrFor(service string) string {
	switch service {
	case ServiceTrips:
		return e.TripsAddr
	case ServiceTravel:
		return e.TravelAddr
	case ServiceAccount:
		return e.AccountAddr
	}
	return ""
}

// WithAddr returns a copy of e with the address of service replaced.
func (e Env) WithAddr(service, addr string) Env {
	switch service {
	case ServiceTrips:
		e.TripsAddr = addr
	case ServiceTravel:
		e.TravelAddr = addr
	case ServiceAccount:
		e.AccountAddr = addr
	}
	return e
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
