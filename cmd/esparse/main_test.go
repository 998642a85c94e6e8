package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/esparse/js"
	"github.com/tdewolff/test"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	filename := writeFile(t, "a.js", "a = 1")
	out, err := execute(t, "", "parse", "--compact", filename)
	require.NoError(t, err)
	test.String(t, out, `{"type":"Program","start":0,"end":5,"sourceType":"script","body":[{"type":"ExpressionStatement","start":0,"end":5,"expression":{"type":"AssignmentExpression","start":0,"end":5,"operator":"=","left":{"type":"Identifier","start":0,"end":1,"name":"a"},"right":{"type":"Literal","start":4,"end":5,"value":1,"raw":"1"}}}]}`+"\n")

	out, err = execute(t, "", "parse", filename)
	require.NoError(t, err)
	test.That(t, strings.HasPrefix(out, "{\n  \"type\": \"Program\""), "indented by default")

	out, err = execute(t, "", "parse", "--silent", filename)
	require.NoError(t, err)
	test.String(t, out, "")

	out, err = execute(t, "", "parse", "--format", "pretty", filename)
	require.NoError(t, err)
	assert.Contains(t, out, "AssignmentExpression")
}

func TestParseCmdMerge(t *testing.T) {
	a := writeFile(t, "a.js", "a")
	out, err := execute(t, "b; c", "parse", "--format", "string", a, "-")
	require.NoError(t, err)
	test.String(t, out, "Stmt(a) Stmt(b) Stmt(c)\n")

	out, err = execute(t, "await x", "parse", "--format", "string", "--ecma", "2022", "--module", "-")
	require.NoError(t, err)
	test.String(t, out, "Stmt((await x))\n")
}

func TestParseCmdError(t *testing.T) {
	filename := writeFile(t, "a.js", "a b")
	_, err := execute(t, "", "parse", filename)
	require.Error(t, err)
	test.String(t, err.Error(), "parse "+filename+": Unexpected token (1:2)")

	_, err = execute(t, "a", "parse", "--format", "yaml", "-")
	require.Error(t, err)
	test.String(t, err.Error(), "unknown format: yaml")

	_, err = execute(t, "", "parse", "--ecma", "4", filename)
	require.Error(t, err)

	_, err = execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
}

func TestTokenizeCmd(t *testing.T) {
	out, err := execute(t, "a +\n1", "tokenize", "-")
	require.NoError(t, err)
	test.String(t, out, "-:1:0\tIdentifier('a')\n-:1:2\t+('+')\n-:2:0\tNumeric('1')\n-:2:1\tEOF\n")

	_, err = execute(t, "'a", "tokenize", "-")
	require.Error(t, err)
	test.That(t, strings.HasPrefix(err.Error(), "tokenize -: "), "wrapped")
}

func TestLoadOptions(t *testing.T) {
	filename := writeFile(t, "esparse.yaml", "ecmaVersion: 2020\nsourceType: module\nallowReserved: never\nallowHashBang: true\nlocations: true\n")
	opts, err := loadOptions(filename)
	require.NoError(t, err)
	test.T(t, opts.EcmaVersion, js.Version(2020))
	test.T(t, opts.SourceType, js.Module)
	test.T(t, opts.AllowReserved, js.ReservedNever)
	test.T(t, opts.AllowHashBang, js.On)
	test.T(t, opts.AllowAwaitOutsideFunction, js.Unset)
	test.T(t, opts.Locations, true)
	test.T(t, opts.Ranges, false)

	_, err = loadOptions(writeFile(t, "bad.yaml", "ecmaVersion: next\n"))
	require.Error(t, err)
	_, err = loadOptions(writeFile(t, "unknown.yaml", "ecma: 5\n"))
	require.Error(t, err)
}

func TestOptionFlags(t *testing.T) {
	config := writeFile(t, "esparse.yaml", "ecmaVersion: latest\nsourceType: module\nranges: true\n")

	var tests = []struct {
		args     []string
		expected js.Options
	}{
		{nil, js.Options{}},
		{[]string{"--ecma", "es2017", "--module"}, js.Options{EcmaVersion: js.Version(2017), SourceType: js.Module}},
		{[]string{"--allow-hash-bang", "--allow-await-outside-function=false", "--locations"}, js.Options{AllowHashBang: js.On, AllowAwaitOutsideFunction: js.Off, Locations: true}},
		{[]string{"--config", config}, js.Options{EcmaVersion: js.Latest, SourceType: js.Module, Ranges: true}},
		{[]string{"--config", config, "--module=false", "--ranges=false", "--preserve-parens"}, js.Options{EcmaVersion: js.Latest, SourceType: js.Script, PreserveParens: true}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			flags := &optionFlags{}
			flags.register(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))
			opts, err := flags.options(cmd)
			require.NoError(t, err)
			test.T(t, opts, tt.expected)
		})
	}
}
