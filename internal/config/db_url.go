package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

type dbParams struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

// buildDBURL assembles a postgres:// URL from discrete connection settings.
func buildDBURL(p dbParams) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(strings.TrimSpace(p.User), p.Password),
		Host:   net.JoinHostPort(strings.TrimSpace(p.Host), strconv.Itoa(p.Port)),
		Path:   "/" + strings.TrimSpace(p.Name),
	}
	if mode := strings.TrimSpace(p.SSLMode); mode != "" {
		u.RawQuery = url.Values{"sslmode": {mode}}.Encode()
	}
	return u.String()
}
