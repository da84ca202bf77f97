package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	t.Run("processes a transaction file", func(t *testing.T) {
		input := writeFile(t, "transactions.csv", strings.Join([]string{
			"type,client,tx,amount",
			"deposit,1,1,100",
			"deposit,1,2,50",
			"dispute,1,1,",
		}, "\n"))

		var out strings.Builder
		require.NoError(t, run([]string{input}, &out))

		expected := strings.Join([]string{
			"client,available,held,total,locked",
			"1,50.0000,100.0000,150.0000,false",
			"",
		}, "\n")
		assert.Equal(t, expected, out.String())
	})

	t.Run("fails fast on a malformed record", func(t *testing.T) {
		input := writeFile(t, "transactions.csv", "deposit,1,1,100\nbogus,1,2,10")

		var out strings.Builder
		err := run([]string{input}, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode input")
		assert.Empty(t, out.String(), "no partial output on failure")
	})

	t.Run("fails on an unreadable input file", func(t *testing.T) {
		var out strings.Builder
		err := run([]string{filepath.Join(t.TempDir(), "missing.csv")}, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "open input")
	})

	t.Run("requires exactly one input path", func(t *testing.T) {
		var out strings.Builder

		require.Error(t, run(nil, &out))
		require.Error(t, run([]string{"a.csv", "b.csv"}, &out))
	})

	t.Run("honors a config file", func(t *testing.T) {
		config := writeFile(t, "config.yaml", "environment: production\nlogLevel: error\n")
		input := writeFile(t, "transactions.csv", "deposit,1,1,5")

		var out strings.Builder
		require.NoError(t, run([]string{"-config", config, input}, &out))
		assert.Contains(t, out.String(), "1,5.0000,0.0000,5.0000,false")
	})

	t.Run("rejects an invalid environment", func(t *testing.T) {
		config := writeFile(t, "config.yaml", "environment: moon\n")
		input := writeFile(t, "transactions.csv", "deposit,1,1,5")

		var out strings.Builder
		err := run([]string{"-config", config, input}, &out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "build logger")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when no path is given", func(t *testing.T) {
		cfg, err := loadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "local", cfg.Environment)
		assert.Empty(t, cfg.LogLevel)
	})

	t.Run("unparseable yaml fails", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "environment: [broken")

		_, err := loadConfig(path)
		require.Error(t, err)
	})
}
