package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.DB.StoreTimeout)
	assert.Equal(t, "QUO", cfg.Quote.Prefix)
	assert.False(t, cfg.Quote.AtomicWrites)
	assert.Equal(t, "0.6", cfg.Quote.AnomalyThreshold.String())
	assert.Equal(t, 10, cfg.Quote.HistoryPageSize)
	assert.InDelta(t, 0.05, cfg.PDF.TaxRate, 1e-9)
	assert.Equal(t, 15, cfg.PDF.ValidityDays)
	assert.True(t, cfg.App.UsesDefaultPassword())
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "SQLite")
	v.Set("STORE_TIMEOUT_SECONDS", "5")
	v.Set("QUOTE_ATOMIC_WRITES", "true")
	v.Set("ANOMALY_THRESHOLD", "0.75")
	v.Set("HISTORY_PAGE_SIZE", "abc")
	v.Set("APP_PASSWORD", "s3creta")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 5*time.Second, cfg.DB.StoreTimeout)
	assert.True(t, cfg.Quote.AtomicWrites)
	assert.Equal(t, "0.75", cfg.Quote.AnomalyThreshold.String())
	assert.Equal(t, 10, cfg.Quote.HistoryPageSize)
	assert.False(t, cfg.App.UsesDefaultPassword())
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "cot", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/cot?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestFromViper_UmbralInvalidoUsaDefecto(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-0.5"} {
		v := viper.New()
		v.Set("ANOMALY_THRESHOLD", raw)
		cfg, err := config.FromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "0.6", cfg.Quote.AnomalyThreshold.String(), raw)
	}
}
