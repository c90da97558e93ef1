package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/szoz/northwind-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NORTHWIND_DB", "")
	t.Setenv("HTTP_ADDR", "")

	cfg := config.Load()

	assert.Equal(t, "northwind.db", cfg.DatabasePath)
	assert.Equal(t, ":8000", cfg.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NORTHWIND_DB", "/data/northwind.db")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg := config.Load()

	assert.Equal(t, "/data/northwind.db", cfg.DatabasePath)
	assert.Equal(t, ":9000", cfg.Addr)
}
