package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/protstat/internal/present"
	"github.com/roach88/protstat/internal/store"
)

const (
	humanFASTA = ">p1\nMKV\n>p2\nMKVL\n"
	mouseFASTA = ">m1\nMKWW\n>m2\nWA\n>m3\nKKKK\n"
)

// writeDatabase writes a FASTA file into dir and returns its path.
func writeDatabase(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and stdin, returning stdout,
// stderr and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStats_File(t *testing.T) {
	dir := t.TempDir()
	human := writeDatabase(t, dir, "human.fasta", humanFASTA)

	out, _, err := execute(t, "", "stats", human)
	require.NoError(t, err)

	assert.Contains(t, out, "Database: "+filepath.Join(dir, "human"))
	assert.Contains(t, out, "Average sequence length: 3.50")
	assert.Contains(t, out, "Standard deviation: 0.71")
	assert.Contains(t, out, "Sequences sum length: 7")
	assert.Contains(t, out, "\tL: 14.29%")
}

func TestStats_Stdin(t *testing.T) {
	out, _, err := execute(t, humanFASTA, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Database: -")
	assert.Contains(t, out, "Average sequence length: 3.50")

	out, _, err = execute(t, humanFASTA, "stats", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Database: -")
}

func TestStats_JSON(t *testing.T) {
	out, _, err := execute(t, humanFASTA, "--format", "json", "stats")
	require.NoError(t, err)

	var resp struct {
		Status string             `json:"status"`
		Data   []*present.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, []int{3, 4}, resp.Data[0].Lengths)
	assert.Equal(t, 7, resp.Data[0].TotalSymbols)
	assert.Equal(t, "M", resp.Data[0].Symbols[0].Symbol)
}

func TestStats_EmptyInput(t *testing.T) {
	_, errOut, err := execute(t, "", "stats")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, IsReported(err))
	assert.Contains(t, errOut, "Error [E002]")
}

func TestStats_SingleRecordFails(t *testing.T) {
	out, errOut, err := execute(t, ">p1\nMKV\n", "stats")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E003]")
	assert.Empty(t, out, "no partial summary for undefined deviation")
}

func TestStats_JSONError(t *testing.T) {
	out, _, err := execute(t, ">p1\nMKV\n", "--format", "json", "stats")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeInsufficientData, resp.Error.Code)
}

func TestStats_MissingFile(t *testing.T) {
	_, errOut, err := execute(t, "", "stats", filepath.Join(t.TempDir(), "absent.fasta"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E005]")
}

func TestStats_CustomDelimiter(t *testing.T) {
	out, _, err := execute(t, "@a\nMK\n@b\nMKVL\n", "--delimiter", "@", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Average sequence length: 3.00")
}

func TestStats_InvalidDelimiter(t *testing.T) {
	_, errOut, err := execute(t, humanFASTA, "--delimiter", ">>", "stats")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E006]")
}

func TestStats_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "protstat.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0o644))

	out, _, err := execute(t, humanFASTA, "--config", cfgPath, "stats")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"status":"ok"`), out)

	// Flags win over the file.
	out, _, err = execute(t, humanFASTA, "--config", cfgPath, "--format", "text", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Database: -")
}

func TestFreqs_MultipleDatabases(t *testing.T) {
	dir := t.TempDir()
	human := writeDatabase(t, dir, "human.fasta", humanFASTA)
	mouse := writeDatabase(t, dir, "mouse.fasta", mouseFASTA)

	out, _, err := execute(t, "", "--format", "json", "freqs", human, mouse)
	require.NoError(t, err)

	var resp struct {
		Data present.FrequencyTable `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []string{"W", "A", "L", "M", "K", "V"}, resp.Data.Symbols)
	require.Len(t, resp.Data.Values, 2)
	assert.Equal(t, 0.0, resp.Data.Values[0][0])
	assert.InDelta(t, 30.0, resp.Data.Values[1][0], 1e-9)
}

func TestFreqs_Text(t *testing.T) {
	out, _, err := execute(t, humanFASTA, "freqs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Symbol"))
	assert.True(t, strings.HasPrefix(lines[1], "L "), "lowest frequency first")
}

func TestAvg(t *testing.T) {
	dir := t.TempDir()
	human := writeDatabase(t, dir, "human.fasta", humanFASTA)
	mouse := writeDatabase(t, dir, "mouse.fasta", mouseFASTA)

	out, _, err := execute(t, "", "--format", "json", "avg", human, mouse)
	require.NoError(t, err)

	var resp struct {
		Data []present.AverageRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 3.5, resp.Data[0].Average)
	assert.InDelta(t, 0.35355339, resp.Data[0].ErrorBar, 1e-8)
}

func TestHist(t *testing.T) {
	out, _, err := execute(t, humanFASTA, "hist", "--bins", "4", "--limit", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "- proteins histogram (limit 8)")
	assert.Contains(t, out, "Median: 4")
	assert.Equal(t, 4+3, strings.Count(out, "\n"))
}

func TestHist_DefaultsFromConfig(t *testing.T) {
	out, _, err := execute(t, humanFASTA, "--format", "json", "hist")
	require.NoError(t, err)

	var resp struct {
		Data []present.Histogram `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 3000, resp.Data[0].Limit)
	assert.Len(t, resp.Data[0].Bins, 50)
}

func TestHistory_RecordsRuns(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	human := writeDatabase(t, dir, "human.fasta", humanFASTA)
	mouse := writeDatabase(t, dir, "mouse.fasta", mouseFASTA)

	_, _, err := execute(t, "", "--db", dbPath, "stats", human, mouse)
	require.NoError(t, err)
	_, _, err = execute(t, "", "--db", dbPath, "avg", human)
	require.NoError(t, err)

	out, _, err := execute(t, "", "--db", dbPath, "--format", "json", "history")
	require.NoError(t, err)
	var list struct {
		Data []store.RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "stats", list.Data[0].Command)
	assert.Equal(t, 2, list.Data[0].Databases)
	assert.Equal(t, "avg", list.Data[1].Command)

	out, _, err = execute(t, "", "--db", dbPath, "--format", "json", "history", list.Data[0].ID)
	require.NoError(t, err)
	var run struct {
		Data HistoryRun `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	require.Len(t, run.Data.Entries, 2)
	assert.Equal(t, filepath.Join(dir, "mouse"), run.Data.Entries[1].Label)
	assert.Equal(t, 3, run.Data.Entries[1].Sequences)

	out, _, err = execute(t, "", "--db", dbPath, "history", "--latest", filepath.Join(dir, "human"))
	require.NoError(t, err)
	assert.Contains(t, out, "Average sequence length: 3.50")
}

func TestHistory_TextList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	out, _, err := execute(t, "", "--db", dbPath, "history")
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", out)

	_, _, err = execute(t, humanFASTA, "--db", dbPath, "freqs")
	require.NoError(t, err)

	out, _, err = execute(t, "", "--db", dbPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "freqs")
	assert.Contains(t, out, "1 database(s)")
}

func TestHistory_RequiresStore(t *testing.T) {
	_, errOut, err := execute(t, "", "history")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "no history database configured")
}

func TestHistory_UnknownRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	_, errOut, err := execute(t, "", "--db", dbPath, "history", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E005]")
}

func TestStats_HeaderOnlyRecords(t *testing.T) {
	out, _, err := execute(t, ">a\n>b\n", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Sequences: 2")
	assert.Contains(t, out, "Average sequence length: 0.00")
	assert.Contains(t, out, "Standard deviation: 0.00")
	assert.Contains(t, out, "Sequences sum length: 0")

	out, _, err = execute(t, ">a\n>b\n", "freqs")
	require.NoError(t, err)
	assert.Equal(t, "Symbol        -\n", out)
}

func TestHistory_FailedCommandRecordsNothing(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	one := writeDatabase(t, dir, "one.fasta", ">p1\nMKV\n")

	_, errOut, err := execute(t, "", "--db", dbPath, "stats", one)
	require.Error(t, err)
	assert.Contains(t, errOut, "Error [E003]")

	_, _, err = execute(t, "", "--db", dbPath, "avg", one)
	require.Error(t, err)

	out, _, err := execute(t, "", "--db", dbPath, "--format", "json", "history")
	require.NoError(t, err)
	var list struct {
		Data []store.RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Empty(t, list.Data)

	_, errOut, err = execute(t, "", "--db", dbPath, "history", "--latest", filepath.Join(dir, "one"))
	require.Error(t, err)
	assert.Contains(t, errOut, "Error [E005]")

	// Commands that need no deviation still record single-record databases.
	_, _, err = execute(t, "", "--db", dbPath, "freqs", one)
	require.NoError(t, err)
	out, _, err = execute(t, "", "--db", dbPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "freqs")
}

func TestHistory_LatestHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	blank := writeDatabase(t, dir, "blank.fasta", ">a\n>b\n")

	_, _, err := execute(t, "", "--db", dbPath, "stats", blank)
	require.NoError(t, err)

	out, _, err := execute(t, "", "--db", dbPath, "history", "--latest", filepath.Join(dir, "blank"))
	require.NoError(t, err)
	assert.Contains(t, out, "Sequences: 2")
}
