package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--db-driver", "sqlite", "--sqlite-path", dbPath, "--log-level", "error"))
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCLI_MigrarImportarYNumerar(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")
	csvPath := filepath.Join(dir, "precios.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,price\nNF-32,1200\nS-T10,450\n"), 0o600))

	run(t, dbPath, "migrate")
	run(t, dbPath, "import", csvPath)

	out := run(t, dbPath, "next-number")
	want := "QUO-" + time.Now().Format("200601") + "-001"
	assert.Equal(t, want, strings.TrimSpace(out))

	stats := run(t, dbPath, "stats")
	assert.Contains(t, stats, "Cotizaciones: 0")
}
