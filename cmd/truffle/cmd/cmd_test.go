package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/truffle/foundation/core/error"
	mdwtoken "github.com/msto63/truffle/foundation/truffle/token"
)

const testConfig = `
[general]
log_level = "error"

[output]
color = false
`

const addFunction = `keyword:fn function_name:add open_paren:( data_type:int variable_name:a comma:,
	data_type:int variable_name:b close_paren:) open_curly_brace:{
	data_type:int variable_name:c assignment_operator:= variable_name:a arithmetic_operator:+ variable_name:b
	close_curly_brace:}`

// writeTokens encodes "kind:text" words as a token file. Every token sits
// on line 1 with its 1-based word index as column.
func writeTokens(t *testing.T, dir, words string) string {
	t.Helper()

	var tokens []mdwtoken.Token
	for i, word := range strings.Fields(words) {
		kindName, text, ok := strings.Cut(word, ":")
		if !ok {
			t.Fatalf("bad token word %q", word)
		}
		kind, known := mdwtoken.ParseKind(kindName)
		if !known {
			t.Fatalf("unknown token kind %q", kindName)
		}
		tokens = append(tokens, mdwtoken.Token{Kind: kind, Text: text, Line: 1, Column: i + 1})
	}

	path := filepath.Join(dir, "input.tokens.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := mdwtoken.WriteStream(f, tokens); err != nil {
		t.Fatalf("WriteStream() error = %v", err)
	}
	return path
}

// run executes the CLI with a quiet, colorless config
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "truffle.toml")
	if err := os.WriteFile(cfg, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", cfg}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildText(t *testing.T) {
	file := writeTokens(t, t.TempDir(), addFunction)

	out, _, err := run(t, "build", file)
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	for _, want := range []string{
		"fn add(int a, int b) { int c = (a + b) }",
		"Operation: + (int)",
		"Variable: a (int)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildStructuredFormats(t *testing.T) {
	file := writeTokens(t, t.TempDir(), addFunction)

	tests := []struct {
		format string
		decode func([]byte, interface{}) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := run(t, "build", "--format", tt.format, file)
			if err != nil {
				t.Fatalf("build error = %v", err)
			}

			var tree map[string]interface{}
			if err := tt.decode([]byte(out), &tree); err != nil {
				t.Fatalf("decode error = %v\n%s", err, out)
			}
			if tree["node"] != "function" || tree["name"] != "add" {
				t.Errorf("tree = %v", tree)
			}
		})
	}
}

func TestBuildSplitFlag(t *testing.T) {
	file := writeTokens(t, t.TempDir(), `keyword:fn function_name:f open_paren:( close_paren:) open_curly_brace:{
		data_type:int variable_name:r assignment_operator:= integer_literal:2 arithmetic_operator:+
		integer_literal:3 arithmetic_operator:* integer_literal:4 close_curly_brace:}`)

	tests := []struct {
		split string
		want  string
	}{
		{"highest", "int r = ((2 + 3) * 4)"},
		{"lowest", "int r = (2 + (3 * 4))"},
	}

	for _, tt := range tests {
		t.Run(tt.split, func(t *testing.T) {
			out, _, err := run(t, "build", "--split", tt.split, file)
			if err != nil {
				t.Fatalf("build error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	file := writeTokens(t, dir, addFunction)

	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"missing file", []string{"build", filepath.Join(dir, "nope.yaml")}, mdwerror.CodeNotFound},
		{"unknown format", []string{"build", "--format", "xml", file}, mdwerror.CodeInvalidInput},
		{"unknown split rule", []string{"build", "--split", "middle", file}, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	file := writeTokens(t, t.TempDir(), addFunction)

	out, _, err := run(t, "check", file)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.HasPrefix(out, "ok "+file) {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "1 function(s)") || !strings.Contains(out, "1 operation(s)") {
		t.Errorf("summary = %q", out)
	}
}

func TestCheckReportsDiagnostic(t *testing.T) {
	file := writeTokens(t, t.TempDir(), `keyword:fn function_name:f open_paren:( close_paren:) open_curly_brace:{
		data_type:int variable_name:a assignment_operator:= variable_name:b close_curly_brace:}`)

	_, stderr, err := run(t, "check", file)
	if !mdwerror.HasCode(err, mdwerror.CodeUnresolvedVariable) {
		t.Fatalf("error = %v, want UNRESOLVED_VARIABLE", err)
	}

	for _, want := range []string{
		"error[UNRESOLVED_VARIABLE]: undefined variable: `b`",
		"--> " + file + ":1:9 (token 8 `b`)",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "version", "--json")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}

	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode error = %v\n%s", err, out)
	}
	if info["version"] == "" || info["ast_format"] == "" {
		t.Errorf("info = %v", info)
	}
}

func TestDiagnosticWithoutPosition(t *testing.T) {
	err := mdwerror.New("token 3 has no kind").WithCode(mdwerror.CodeInvalidInput)

	got := diagnostic(plainStyles(), "in.yaml", err)
	if got != "error[INVALID_INPUT]: token 3 has no kind" {
		t.Errorf("diagnostic() = %q", got)
	}
}
