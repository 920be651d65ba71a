package cmd

import (
	"eda/internal/adapters/out/postgres"
)

// DatabaseConfig maps the db section onto the adapter's connection settings.
func (c DBConfig) DatabaseConfig() postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Driver:   c.Driver,
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		SSLMode:  c.SSLMode,
		Path:     c.Path,
	}
}
