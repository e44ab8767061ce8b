package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func init() {
	color.NoColor = true
}

// setupProject clears every toolchain variable from the process environment
// and writes envFile (if non-empty) as the project's .env.
func setupProject(t *testing.T, envFile string) string {
	t.Helper()

	vars := []string{config.EnvMainnetAlchemyURL}
	for _, remote := range config.RemoteNetworks {
		vars = append(vars, remote.URLEnv, remote.KeyEnv)
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
	t.Setenv("CHAINCONF_NETWORK", "")
	t.Setenv("CHAINCONF_LOG_LEVEL", "error")

	dir := t.TempDir()
	if envFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o600))
	}
	return dir
}

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--project-root", dir, "--non-interactive"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "chainconf version dev\n", out)
}

func TestShowCmd(t *testing.T) {
	dir := setupProject(t, "GOERLI_INFURA_URL=https://goerli.infura.io/v3/secret\nGOERLI_DEV_PRIVATE_KEY="+devKey+"\n")

	t.Run("whole configuration", func(t *testing.T) {
		out, err := execute(t, dir, "show")
		require.NoError(t, err)

		assert.Contains(t, out, "Solidity:  0.8.11")
		assert.Contains(t, out, "runs: 200")
		assert.Contains(t, out, "hardhat-gas-reporter")
		assert.Contains(t, out, "Goerli")
		assert.Contains(t, out, "https://goerli.infura.io/***")
		assert.NotContains(t, out, "secret")
		assert.NotContains(t, out, devKey)
	})

	t.Run("single network", func(t *testing.T) {
		out, err := execute(t, dir, "show", "hardhat")
		require.NoError(t, err)

		assert.Contains(t, out, "Hardhat")
		assert.Contains(t, out, "block 14032174")
		assert.Contains(t, out, "unlimited")
		assert.NotContains(t, out, "Goerli")
	})

	t.Run("network flag", func(t *testing.T) {
		out, err := execute(t, dir, "show", "-n", "localhost")
		require.NoError(t, err)
		assert.Contains(t, out, "Localhost")
		assert.NotContains(t, out, "Hardhat")
	})

	t.Run("unknown network suggests close names", func(t *testing.T) {
		_, err := execute(t, dir, "show", "gorli")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "goerli")
	})
}

func TestProcessEnvBeatsEnvFile(t *testing.T) {
	dir := setupProject(t, "KOVAN_INFURA_URL=https://from-file.example\n")
	t.Setenv(config.EnvKovanInfuraURL, "https://from-env.example")

	out, err := execute(t, dir, "export")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	kovan := doc["networks"].(map[string]any)["kovan"].(map[string]any)
	assert.Equal(t, "https://from-env.example", kovan["url"])
}

func TestExportCmd(t *testing.T) {
	dir := setupProject(t, "GOERLI_INFURA_URL=https://x\nGOERLI_DEV_PRIVATE_KEY=abc\n")

	t.Run("json to stdout", func(t *testing.T) {
		out, err := execute(t, dir, "export", "--format", "json")
		require.NoError(t, err)

		var doc struct {
			Solidity string `json:"solidity"`
			Networks map[string]struct {
				URL      string   `json:"url"`
				Accounts []string `json:"accounts"`
			} `json:"networks"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "0.8.11", doc.Solidity)
		assert.Equal(t, "https://x", doc.Networks["goerli"].URL)
		assert.Equal(t, []string{"0xabc"}, doc.Networks["goerli"].Accounts)
		assert.Equal(t, "", doc.Networks["kovan"].URL)
		assert.Empty(t, doc.Networks["kovan"].Accounts)
	})

	t.Run("foundry to file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "foundry.networks.toml")
		out, err := execute(t, dir, "export", "--format", "foundry", "-o", target)
		require.NoError(t, err)
		assert.Contains(t, out, target)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(data), "${GOERLI_INFURA_URL}")
		assert.NotContains(t, string(data), "https://x")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := execute(t, dir, "export", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestValidateCmd(t *testing.T) {
	t.Run("unset variables are valid", func(t *testing.T) {
		dir := setupProject(t, "")
		out, err := execute(t, dir, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
	})

	t.Run("verbose lists unset variables", func(t *testing.T) {
		dir := setupProject(t, "")
		out, err := execute(t, dir, "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "ARBITRUM_ALCHEMY_URL")
	})

	t.Run("malformed values fail", func(t *testing.T) {
		dir := setupProject(t, "RINKEBY_INFURA_URL=not a url\nRINKEBY_DEV_PRIVATE_KEY=zz\n")
		out, err := execute(t, dir, "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 issue(s)")
		assert.Contains(t, out, "rinkeby")
	})
}

func TestAccountsCmd(t *testing.T) {
	dir := setupProject(t, "ARBITRUM_DEV_PRIVATE_KEY="+devKey+"\n")

	out, err := execute(t, dir, "accounts")
	require.NoError(t, err)
	assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Contains(t, out, "arbitrum")
	assert.NotContains(t, out, devKey)
	assert.True(t, strings.Contains(out, "Signing disabled:"))
}

func TestNodeCmdDryRun(t *testing.T) {
	t.Run("without fork url", func(t *testing.T) {
		dir := setupProject(t, "")
		out, err := execute(t, dir, "node", "--dry-run")
		require.NoError(t, err)

		assert.Contains(t, out, "anvil --port 8545 --host 127.0.0.1")
		assert.Contains(t, out, "--disable-code-size-limit")
		assert.NotContains(t, out, "--fork-url")
		assert.Contains(t, out, "http://127.0.0.1:8545")
	})

	t.Run("with fork url", func(t *testing.T) {
		dir := setupProject(t, "MAINNET_ALCHEMY_URL=https://eth-mainnet.alchemyapi.io/v2/key\n")
		out, err := execute(t, dir, "node", "--dry-run", "--port", "9545")
		require.NoError(t, err)

		assert.Contains(t, out, "--port 9545")
		assert.Contains(t, out, "--fork-block-number 14032174")
		assert.Contains(t, out, "https://eth-mainnet.alchemyapi.io/***")
	})
}

func TestNetworksCmd(t *testing.T) {
	dir := setupProject(t, "KOVAN_INFURA_URL=https://kovan.example\n")

	out, err := execute(t, dir, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "kovan")
	assert.Contains(t, out, "local simulation")
	assert.Contains(t, out, "not configured")
}
