package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func execute(args ...string) (string, error) {
	out, _, err := executeWithStderr(args...)
	return out, err
}

func executeWithStderr(args ...string) (string, string, error) {
	var out, errOut strings.Builder
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLexCommand(t *testing.T) {
	src := writeFile(t, "main.rot", "let x = 5;")

	out, err := execute("lex", src)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(
		"1:1\tLET\t\"let\"\n1:5\tIDENTIFIER\t\"x\"\n1:7\tEQUAL\t\"=\"\n1:9\tINTEGER\t\"5\"\n1:10\tSEMICOLON\t\";\"\n",
		out,
	)
}

func TestParseCommand(t *testing.T) {
	src := writeFile(t, "main.rot", "use std [*]\nfor i in xs { }\n")

	out, err := execute("parse", src)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("(use std *)\n(for i in xs {})\n", out)
}

func TestParseCommandWithDiagnostics(t *testing.T) {
	src := writeFile(t, "main.rot", "let x = @;")

	out, errOut, err := executeWithStderr("parse", src)

	assert := assert.New(t)
	var diagErr *diagnosticsError
	assert.True(errors.As(err, &diagErr))
	assert.Equal(2, diagErr.count)
	assert.Empty(out)
	assert.Equal(
		"[line 1:9] InvalidToken: Invalid character '@'.\n"+
			"[line 1:10] UnexpectedToken: Expect INTEGER, found SEMICOLON \";\".\n",
		errOut,
	)
}

func TestYAMLDiagnosticsStayOnStdout(t *testing.T) {
	src := writeFile(t, "main.rot", "@")

	out, errOut, err := executeWithStderr("lex", "--format", "yaml", src)

	assert := assert.New(t)
	assert.Error(err)
	assert.Empty(errOut)
	assert.Contains(out, "InvalidToken")
	assert.Contains(out, "clean: false")
}

func TestFormatFromConfigAndFlag(t *testing.T) {
	src := writeFile(t, "main.rot", "while true { }")
	cfg := writeFile(t, "rotor.toml", "[dump]\nformat = \"yaml\"\n")

	assert := assert.New(t)

	out, err := execute("parse", "--config", cfg, src)
	assert.NoError(err)
	assert.Contains(out, "statements:")
	assert.Contains(out, "clean: true")

	out, err = execute("parse", "--config", cfg, "--format", "text", src)
	assert.NoError(err)
	assert.Equal("(while true {})\n", out)

	_, err = execute("parse", "--format", "xml", src)
	assert.ErrorContains(err, "invalid dump format")
}

func TestCommandErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := execute("lex", filepath.Join(t.TempDir(), "missing.rot"))
	assert.ErrorContains(err, "reading source")

	_, err = execute("lex")
	assert.Error(err)

	_, err = execute("lex", "--config", filepath.Join(t.TempDir(), "missing.toml"), "x.rot")
	assert.ErrorContains(err, "config file not found")
}
