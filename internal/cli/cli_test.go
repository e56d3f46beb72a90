package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathvm/mvmir/internal/irtext"
	"github.com/mathvm/mvmir/internal/testutil"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeProgramJSON(t *testing.T, dir string) string {
	t.Helper()
	data, err := irtext.MarshalJSON(testutil.LoopProgram(t))
	require.NoError(t, err)
	path := filepath.Join(dir, "program.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeProgramYAML(t *testing.T, dir string) string {
	t.Helper()
	data, err := irtext.MarshalYAML(testutil.LoopProgram(t))
	require.NoError(t, err)
	path := filepath.Join(dir, "program.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// A document that passes the schema but whose entry block never gets a
// transition, so the graph check must fail.
const incompleteDoc = `{"version": 1, "functions": [{"id": 0, "returns": "bot", "blocks": [{"name": "a"}]}]}`

func writeIncompleteDoc(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "incomplete.json")
	require.NoError(t, os.WriteFile(path, []byte(incompleteDoc), 0o644))
	return path
}

func TestDumpText(t *testing.T) {
	path := writeProgramJSON(t, t.TempDir())

	out, _, err := runCommand(t, "dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "; program ")
	assert.Contains(t, out, "function 0 returns int")
	assert.Contains(t, out, "if v5 goto body else after")
}

func TestDumpYAML(t *testing.T) {
	path := writeProgramYAML(t, t.TempDir())

	out, _, err := runCommand(t, "dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "function 1 returns bot")
}

func TestDumpJSON(t *testing.T) {
	path := writeProgramJSON(t, t.TempDir())

	out, _, err := runCommand(t, "--format", "json", "dump", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Len(t, data["program_id"], 64)
	assert.Equal(t, float64(2), data["functions"])
	assert.Contains(t, data["listing"], "function 0 returns int")
}

func TestDumpMissingFile(t *testing.T) {
	out, _, err := runCommand(t, "dump", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestDumpRejectsSchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "functions": [{"id": 0, "blocks": []}]}`), 0o644))

	out, _, err := runCommand(t, "dump", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeBadDocument)
}

func TestCheckWellFormed(t *testing.T) {
	path := writeProgramJSON(t, t.TempDir())

	out, _, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 2 function(s)")
}

func TestCheckMalformed(t *testing.T) {
	path := writeIncompleteDoc(t, t.TempDir())

	out, _, err := runCommand(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INCOMPLETE_FUNCTION")
	assert.Contains(t, out, "1 error(s)")
}

func TestCheckMalformedJSON(t *testing.T) {
	path := writeIncompleteDoc(t, t.TempDir())

	out, _, err := runCommand(t, "--format", "json", "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidIR, resp.Error.Code)
}

func TestArchiveAndLog(t *testing.T) {
	dir := t.TempDir()
	path := writeProgramJSON(t, dir)
	db := filepath.Join(dir, "archive.db")

	out, _, err := runCommand(t, "archive", path, "--db", db, "--label", "nightly")
	require.NoError(t, err)
	assert.Contains(t, out, "archived ")
	assert.Contains(t, out, "seq 1")

	// Same content again: new build entry, same program id.
	out, _, err = runCommand(t, "archive", path, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "already archived")
	assert.Contains(t, out, "seq 2")

	out, _, err = runCommand(t, "log", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "nightly")

	id, err := irtext.ProgramID(testutil.LoopProgram(t))
	require.NoError(t, err)
	out, _, err = runCommand(t, "log", "--db", db, "--program", id)
	require.NoError(t, err)
	assert.Contains(t, out, id)
}

func TestArchiveRefusesMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeIncompleteDoc(t, dir)

	out, _, err := runCommand(t, "archive", path, "--db", filepath.Join(dir, "archive.db"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "refusing to archive")
}

func TestLogEmptyArchive(t *testing.T) {
	db := filepath.Join(t.TempDir(), "archive.db")

	out, _, err := runCommand(t, "log", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "no builds recorded")
}

func TestInvalidFormatFlag(t *testing.T) {
	_, _, err := runCommand(t, "--format", "xml", "check", "whatever.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	path := writeProgramJSON(t, t.TempDir())

	out, errOut, err := runCommand(t, "--format", "json", "--verbose", "dump", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded 2 function(s)")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}
