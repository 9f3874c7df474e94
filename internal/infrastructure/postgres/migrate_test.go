package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/postgres"
)

func TestMigrations_OrdenadasYEmbebidas(t *testing.T) {
	list, err := postgres.Migrations()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 1, list[0].Version)
	assert.Equal(t, "init", list[0].Description)
	assert.Contains(t, list[0].SQL, "quote_no   TEXT NOT NULL UNIQUE")
	assert.Contains(t, list[0].SQL, "ON DELETE CASCADE")
	assert.Equal(t, 2, list[1].Version)
	assert.Equal(t, "quote no prefix", list[1].Description)
}
