package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	exportPath := writeExportFixture(t, home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CSRFToken") != "smoke" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"recommendations": [{"title": "Slow down on proofs", "priority": "low"}]}`))
	}))
	defer server.Close()
	env := []string{"EVALDASH_API_BASE_URL=" + server.URL}

	_, stderr, err := runEvaldash(t, binaryPath, home, env, "sections", "import", exportPath)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runEvaldash(t, binaryPath, home, env, "sections", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "MATH-101")

	_, _, err = runEvaldash(t, binaryPath, home, env, "recommend", "1", "--json")
	require.Error(t, err)

	_, stderr, err = runEvaldash(t, binaryPath, home, env, "token", "set", "csrftoken=smoke")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runEvaldash(t, binaryPath, home, env, "recommend", "1", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Slow down on proofs")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "evaldash-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/evaldash")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build evaldash binary: %s", string(output))
	return binaryPath
}

func runEvaldash(t *testing.T, binaryPath, home string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(append(os.Environ(), "HOME="+home), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeExportFixture(t *testing.T, home string) string {
	t.Helper()

	export := `{
  "section_map": {"1": "MATH-101"},
  "section_scores": {
    "MATH-101": {"has_data": true, "total_percentage": 81.25, "evaluation_count": 12, "category_scores": [4.1, 3.9]}
  }
}`

	path := filepath.Join(home, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))
	return path
}
