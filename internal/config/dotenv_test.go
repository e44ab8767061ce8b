package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestReadEnvFiles(t *testing.T) {
	t.Run("missing files are skipped", func(t *testing.T) {
		dir := t.TempDir()
		files, err := ReadEnvFiles(dir, []string{".env", ".env.local"})
		require.NoError(t, err)
		assert.Empty(t, files.Vars)
		assert.Empty(t, files.Loaded)
	})

	t.Run("first file wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".env"), "GOERLI_INFURA_URL=https://from-env\n# comment\nGOERLI_DEV_PRIVATE_KEY=abc\n")
		writeFile(t, filepath.Join(dir, ".env.local"), "GOERLI_INFURA_URL=https://from-local\nKOVAN_INFURA_URL=https://kovan\n")

		files, err := ReadEnvFiles(dir, []string{".env", ".env.local"})
		require.NoError(t, err)
		assert.Equal(t, "https://from-env", files.Vars["GOERLI_INFURA_URL"])
		assert.Equal(t, "abc", files.Vars["GOERLI_DEV_PRIVATE_KEY"])
		assert.Equal(t, "https://kovan", files.Vars["KOVAN_INFURA_URL"])
		assert.Equal(t, []string{filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}, files.Loaded)
	})

	t.Run("absolute paths are used as is", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.env")
		writeFile(t, path, "RINKEBY_INFURA_URL=https://rinkeby\n")

		files, err := ReadEnvFiles("/does/not/matter", []string{path})
		require.NoError(t, err)
		assert.Equal(t, "https://rinkeby", files.Vars["RINKEBY_INFURA_URL"])
	})
}

func TestWithEnvFiles(t *testing.T) {
	files := &EnvFileVars{Vars: map[string]string{
		"GOERLI_INFURA_URL":      "https://from-file",
		"GOERLI_DEV_PRIVATE_KEY": "abc",
	}}
	process := MapLookup(map[string]string{"GOERLI_INFURA_URL": "https://from-process"})

	cfg := Load(WithEnvFiles(process, files))
	goerli := cfg.Networks["goerli"]
	assert.Equal(t, "https://from-process", goerli.RPCURL)
	assert.Equal(t, []string{"0xabc"}, goerli.Accounts)

	assert.NotNil(t, WithEnvFiles(process, nil))
}
