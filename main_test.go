package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.dl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun(t *testing.T) {
	type testCase struct {
		name     string
		flags    []string
		src      string
		exitCode int
		stdout   string
		stderr   []string
	}
	tests := []testCase{
		{
			name:   "ok",
			src:    "let x = uniform(1,4);\nlet y = 5/2;\noutput(x:expect(2));\noutput(y);\n",
			stdout: "0.25\n2.5\n",
		},
		{
			name:     "syntax error",
			src:      "let = 5;",
			exitCode: 1,
			stderr:   []string{"distlang: ", "prog.dl:1:5: syntax error: expected IDENTIFIER"},
		},
		{
			name:     "runtime error",
			src:      "output(1); output(y); output(2);",
			exitCode: 1,
			stdout:   "1\n",
			stderr:   []string{`exec "output(y);": undefined variable: "y"`},
		},
		{
			name:     "keep going",
			flags:    []string{"-k"},
			src:      "output(1); output(y); output(2);",
			exitCode: 1,
			stdout:   "1\n2\n",
			stderr:   []string{`distlang: exec "output(y);": undefined variable: "y"`},
		},
		{
			name:     "outcome limit",
			flags:    []string{"-m", "10"},
			src:      "let s = uniform(1,20) + uniform(1,20); output(s:expect(2));",
			exitCode: 1,
			stderr:   []string{"resource exhausted"},
		},
		{
			name:   "outcome limit not reached",
			flags:  []string{"-m", "10"},
			src:    "let s = uniform(1,2) + uniform(1,2); output(s:expect(2));",
			stdout: "0.25\n",
		},
		{
			name:     "bad limit",
			flags:    []string{"-m", "lots"},
			src:      "output(1);",
			exitCode: 1,
			stderr:   []string{`invalid -m value "lots"`},
		},
		{
			name:     "unknown flag",
			flags:    []string{"-z"},
			src:      "output(1);",
			exitCode: 1,
			stderr:   []string{usage},
		},
		{
			name:   "dump ast",
			flags:  []string{"-a"},
			src:    "output(1);",
			stdout: "1\n",
			stderr: []string{"ast.Program", "OutputStmt"},
		},
		{
			name:   "dump bindings",
			flags:  []string{"-a"},
			src:    "let b = 2.5; let a = uniform(1,2); let s = a + a;",
			stderr: []string{"a = *ast.UniformDist\nb = 2.5\ns = *ast.CombinedDist\n"},
		},
		{
			name:     "dump bindings after failure",
			flags:    []string{"-a"},
			src:      "let x = 1; output(y);",
			exitCode: 1,
			stderr:   []string{"x = 1\n", `undefined variable: "y"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProgram(t, tt.src)
			args := append([]string{"distlang"}, tt.flags...)
			args = append(args, path)

			stdout, stderr := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
			exitCode := run(args, stdout, stderr)
			assert.Equal(t, tt.exitCode, exitCode, "stderr: %s", stderr)
			assert.Equal(t, tt.stdout, stdout.String())
			for _, want := range tt.stderr {
				assert.Contains(t, stderr.String(), want)
			}
			if tt.exitCode == 0 && len(tt.stderr) == 0 {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestRunArgs(t *testing.T) {
	for _, args := range [][]string{
		{"distlang"},
		{"distlang", "a.dl", "b.dl"},
		{"distlang", "-h"},
	} {
		stdout, stderr := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
		assert.Equal(t, 1, run(args, stdout, stderr), "%q", args)
		assert.Contains(t, stderr.String(), usage)
		assert.Empty(t, stdout.String())
	}

	stderr := bytes.NewBuffer(nil)
	assert.Equal(t, 1, run([]string{"distlang", filepath.Join(t.TempDir(), "missing.dl")}, bytes.NewBuffer(nil), stderr))
	assert.Contains(t, stderr.String(), "read program")
}
