package db

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ConnConfig holds the connection parameters for the export database.
type ConnConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	AppName        string
	ConnectTimeout time.Duration
}

// BuildConnectionString converts a ConnConfig to a PostgreSQL URI.
func BuildConnectionString(config *ConnConfig) string {
	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/" + config.Database,
	}

	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}

	query := url.Values{}
	if config.SSLMode != "" {
		query.Set("sslmode", config.SSLMode)
	}
	if config.AppName != "" {
		query.Set("application_name", config.AppName)
	}
	if config.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(config.ConnectTimeout.Seconds())))
	}

	u.RawQuery = query.Encode()
	return u.String()
}
