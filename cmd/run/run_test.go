package run

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/stackchain/stackchain/cmd"
	"github.com/stackchain/stackchain/cmd/util"
	"github.com/stackchain/stackchain/internal/scenario"
)

const (
	interleaved = `name: interleaved
variant: exclusive
steps:
  - op: add
    values: [2, 4, 6]
  - op: pop
    expect: 6
  - op: push
    values: [12, 13, 14]
  - op: drain
    values: [14, 13, 12, 4, 2]
`
	sharing = `{"name": "sharing", "variant": "persistent", "steps": [
  {"op": "prepend", "value": 1, "to": "base"},
  {"op": "prepend", "value": 2, "from": "base", "to": "base"},
  {"op": "prepend", "value": 3, "from": "base", "to": "three"},
  {"op": "tail", "from": "three", "to": "back"},
  {"op": "prepend", "value": 9, "from": "back", "to": "nine"},
  {"op": "expect-shared", "from": "three", "with": "nine"}
]}`
	broken = `name: broken
variant: iterable
steps:
  - op: push
    value: 1
  - op: peek
    expect: 2
`
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newRootCommand(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(NewRunCommand())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"run"}, args...))
	return rootCmd, &out
}

func TestRunJSONReport(t *testing.T) {
	util.PrepareTempConfigDir(t)

	first := writeScenario(t, "interleaved.yaml", interleaved)
	second := writeScenario(t, "sharing.json", sharing)

	rootCmd, out := newRootCommand(t, first, second, "--log-level", "none")
	require.NoError(t, rootCmd.Execute())

	res := gjson.ParseBytes(out.Bytes())
	require.EqualValues(t, 2, res.Get("#").Int())

	require.Equal(t, "interleaved", res.Get("0.name").String())
	require.True(t, res.Get("0.passed").Bool())
	require.EqualValues(t, -1, res.Get("0.failed_step").Int())
	require.Empty(t, res.Get("0.final").Array())

	require.Equal(t, "persistent", res.Get("1.variant").String())
	require.True(t, res.Get("1.passed").Bool())
	var final []int64
	for _, v := range res.Get("1.final").Array() {
		final = append(final, v.Int())
	}
	require.Equal(t, []int64{9, 2, 1}, final)
	require.NotEmpty(t, res.Get("1.run_id").String())
}

func TestRunTextReport(t *testing.T) {
	util.PrepareTempConfigDir(t)

	path := writeScenario(t, "sharing.json", sharing)

	rootCmd, out := newRootCommand(t, path, "--output", "text", "--row-width", "2", "--log-level", "none")
	require.NoError(t, rootCmd.Execute())

	require.Equal(t, strings.Join([]string{
		"PASS sharing (persistent, 6 steps)",
		"  final:",
		"    9 2",
		"    1",
		"",
	}, "\n"), out.String())
}

func TestRunFailingScenario(t *testing.T) {
	util.PrepareTempConfigDir(t)

	ok := writeScenario(t, "interleaved.yaml", interleaved)
	bad := writeScenario(t, "broken.yaml", broken)

	rootCmd, out := newRootCommand(t, ok, bad, "--output", "text", "--log-level", "none")
	err := rootCmd.Execute()
	require.ErrorIs(t, err, scenario.ErrExpectationFailed)

	require.Contains(t, out.String(), "PASS interleaved (exclusive, 4 steps)\n  final: (empty)\n")
	require.Contains(t, out.String(), "FAIL broken (iterable, 1 steps)\n  step 1 (peek)")
}

func TestRunInputErrors(t *testing.T) {
	util.PrepareTempConfigDir(t)

	t.Run("no_files", func(t *testing.T) {
		rootCmd, _ := newRootCommand(t)
		require.Error(t, rootCmd.Execute())
	})

	t.Run("missing_file", func(t *testing.T) {
		rootCmd, _ := newRootCommand(t, filepath.Join(t.TempDir(), "nope.yaml"), "--log-level", "none")
		require.ErrorIs(t, rootCmd.Execute(), os.ErrNotExist)
	})

	t.Run("invalid_scenario", func(t *testing.T) {
		path := writeScenario(t, "ring.yaml", "variant: ring\n")
		rootCmd, _ := newRootCommand(t, path, "--log-level", "none")
		require.ErrorIs(t, rootCmd.Execute(), scenario.ErrUnknownVariant)
	})

	t.Run("invalid_parallelism", func(t *testing.T) {
		path := writeScenario(t, "interleaved.yaml", interleaved)
		rootCmd, _ := newRootCommand(t, path, "--parallelism", "0", "--log-level", "none")
		require.ErrorContains(t, rootCmd.Execute(), "'run.parallelism'")
	})

	t.Run("invalid_log_format", func(t *testing.T) {
		path := writeScenario(t, "interleaved.yaml", interleaved)
		rootCmd, _ := newRootCommand(t, path, "--log-format", "xml")
		require.ErrorContains(t, rootCmd.Execute(), "'log.format'")
	})
}

func TestRunConfigSources(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		util.PrepareTempConfigDir(t)
		t.Setenv("STACKCHAIN_RUN_OUTPUT", "text")
		t.Setenv("STACKCHAIN_LOG_LEVEL", "none")

		path := writeScenario(t, "interleaved.yaml", interleaved)
		rootCmd, out := newRootCommand(t, path)
		require.NoError(t, rootCmd.Execute())
		require.True(t, strings.HasPrefix(out.String(), "PASS interleaved"))
	})

	t.Run("config_file", func(t *testing.T) {
		util.PrepareTempConfigFile(t, `log:
  level: none
run:
  output: text
  rowWidth: 1
`)

		path := writeScenario(t, "sharing.json", sharing)
		rootCmd, out := newRootCommand(t, path)
		require.NoError(t, rootCmd.Execute())
		require.Contains(t, out.String(), "    9\n    2\n    1\n")
	})

	t.Run("flag_overrides_env", func(t *testing.T) {
		util.PrepareTempConfigDir(t)
		t.Setenv("STACKCHAIN_RUN_OUTPUT", "text")

		path := writeScenario(t, "interleaved.yaml", interleaved)
		rootCmd, out := newRootCommand(t, path, "--output", "json", "--log-level", "none")
		require.NoError(t, rootCmd.Execute())
		require.True(t, gjson.Valid(out.String()))
	})
}
