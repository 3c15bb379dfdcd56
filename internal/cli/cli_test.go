package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Flarenzy/hostreg/internal/domain"
	"github.com/stretchr/testify/require"
)

const cleanInventory = `networks:
  - name: office
    family: ipv4
    hosts:
      - ip: 10.0.0.1
        hostname: alpha
      - ip: 10.0.0.2
        hostname: beta
      - ip: 10.0.0.5
        hostname: printer
  - name: lab
    hosts:
      - ip: 10.0.0.1
        hostname: alpha
      - ip: "::1"
        hostname: beta
`

const brokenInventory = `networks:
  - name: office
    family: ipv6
    hosts:
      - ip: 10.0.0.1
        hostname: alpha
      - ip: 2001:db8::1
        hostname: alpha
      - ip: 2001:db8::2
        hostname: ALPHA
`

func writeInventory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOSTREG_INVENTORY", "")
	t.Setenv("HOSTREG_LOG_LEVEL", "")
	t.Setenv("HOSTREG_LOG_FORMAT", "")

	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestCheckCleanInventory(t *testing.T) {
	path := writeInventory(t, cleanInventory)

	out, _, err := run(t, "check", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "office")
	require.Contains(t, out, "10.0.0.1-10.0.0.2, 10.0.0.5")
	require.Contains(t, out, "ok: 2 networks, 5 hosts")
}

func TestCheckReportsEveryRejection(t *testing.T) {
	path := writeInventory(t, brokenInventory)

	out, _, err := run(t, "check", "--inventory", path, "--log-level", "error")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrWrongAddressFamily)
	require.ErrorIs(t, err, domain.ErrDuplicateName)
	require.Equal(t, ExitInvalidInput, ExitCode(err))

	require.Contains(t, out, "2 rejected:")
	require.Contains(t, out, "only IPv6 hosts are allowed")
}

func TestListOneNetwork(t *testing.T) {
	path := writeInventory(t, cleanInventory)

	out, _, err := run(t, "list", "lab", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "10.0.0.1")
	require.Contains(t, out, "ipv6")
	require.NotContains(t, out, "printer")
}

func TestListUnknownNetwork(t *testing.T) {
	path := writeInventory(t, cleanInventory)

	_, _, err := run(t, "list", "dmz", "-f", path)
	require.ErrorIs(t, err, domain.ErrNetworkNotFound)
	require.Equal(t, ExitFailure, ExitCode(err))
}

func TestLookup(t *testing.T) {
	path := writeInventory(t, cleanInventory)

	out, _, err := run(t, "lookup", "office", "--name", "  PRINTER ", "-f", path)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5\tipv4\tprinter\n", out)

	out, _, err = run(t, "lookup", "lab", "--ip", "::1", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "beta")

	_, _, err = run(t, "lookup", "office", "--ip", "::ffff:10.0.0.1", "-f", path)
	require.ErrorIs(t, err, domain.ErrHostNotFound)
}

func TestLookupRequiresExactlyOneKey(t *testing.T) {
	path := writeInventory(t, cleanInventory)

	_, _, err := run(t, "lookup", "office", "-f", path)
	require.Error(t, err)

	_, _, err = run(t, "lookup", "office", "--ip", "10.0.0.1", "--name", "alpha", "-f", path)
	require.Error(t, err)
}

func TestExportWarnsOnPartialLoad(t *testing.T) {
	path := writeInventory(t, brokenInventory)

	out, logs, err := run(t, "export", "-f", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, out, "2001:db8::1")
	require.Contains(t, logs, "inventory partially loaded")
}

func TestInvalidLogLevelFromEnv(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("HOSTREG_LOG_LEVEL", "chatty")
	t.Setenv("HOSTREG_LOG_FORMAT", "")
	t.Setenv("HOSTREG_INVENTORY", "")

	err := Execute(context.Background(), []string{"list"}, &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Flags replace the invalid environment.
	err = Execute(context.Background(), []string{"list", "--log-level", "info", "--log-format", "text"}, &stdout, &stderr)
	require.NoError(t, err)
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitInvalidInput, ExitCode(domain.ErrDuplicateAddress))
	require.Equal(t, ExitInvalidInput, ExitCode(domain.ErrMissingArgument))
	require.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}
