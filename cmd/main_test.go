package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func defaultConfig() config {
	return config{indent: 2, jobs: 4}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

func TestRunStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader(`দেখাও("Hello World!");`)

	if err := run(defaultConfig(), nil, stdin, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	if got, want := stdout.String(), "console.log(\"Hello World!\");\n"; got != want {
		t.Errorf("stdout = %q; want %q", got, want)
	}
}

func TestRunSingleFileToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "main.bs", "ধরি সংখ্যা ক = 5;")

	var stdout, stderr bytes.Buffer
	if err := run(defaultConfig(), []string{input}, nil, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	if got, want := stdout.String(), "let k: number = 5;\n"; got != want {
		t.Errorf("stdout = %q; want %q", got, want)
	}
}

func TestRunOutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "main.bs", "যদি (সত্য) { দেখাও(1); }")
	output := filepath.Join(dir, "out.ts")

	cfg := defaultConfig()
	cfg.output = output
	cfg.indent = 4

	var stdout, stderr bytes.Buffer
	if err := run(cfg, []string{input}, nil, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "if (true) {\n    console.log(1);\n}\n"; string(got) != want {
		t.Errorf("output = %q; want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should stay empty, got %q", stdout.String())
	}
}

func TestRunMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeFile(t, dir, "a.bs", "দেখাও(1);"),
		writeFile(t, dir, "b.bs", "দেখাও(2);"),
		writeFile(t, dir, "c.bs", "দেখাও(3);"),
	}

	cfg := defaultConfig()
	cfg.verbose = true

	var stdout, stderr bytes.Buffer
	if err := run(cfg, inputs, nil, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	for i, name := range []string{"a.ts", "b.ts", "c.ts"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		want := "console.log(" + string(rune('1'+i)) + ");\n"
		if string(got) != want {
			t.Errorf("%s = %q; want %q", name, got, want)
		}
	}

	if n := strings.Count(stderr.String(), " -> "); n != 3 {
		t.Errorf("verbose output has %d lines; want 3:\n%s", n, stderr.String())
	}
}

func TestRunReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.bs", "দেখাও(1);")
	bad := writeFile(t, dir, "bad.bs", `দেখাও("x")`)

	var stdout, stderr bytes.Buffer
	err := run(defaultConfig(), []string{good, bad}, nil, &stdout, &stderr)
	if !errors.Is(err, errBuildFailed) {
		t.Fatalf("run returned %v; want errBuildFailed", err)
	}

	report := stderr.String()
	if !strings.Contains(report, "Build failed with errors:") {
		t.Errorf("missing report header:\n%s", report)
	}
	if !strings.Contains(report, "bad.bs:1:11: syntax error:") {
		t.Errorf("missing located error:\n%s", report)
	}

	if _, err := os.Stat(filepath.Join(dir, "bad.ts")); !os.IsNotExist(err) {
		t.Errorf("bad.ts should not be left behind, stat err = %v", err)
	}
}

func TestRunDumps(t *testing.T) {
	cfg := defaultConfig()
	cfg.dumpTokens = true
	cfg.dumpAst = true

	var stdout, stderr bytes.Buffer
	if err := run(cfg, nil, strings.NewReader("দেখাও(ক);"), &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	dump := stderr.String()
	for _, want := range []string{"PRINT()", "IDENT(ক)", "EOF()", "PrintStmt", "IdentExpr"} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump lacks %q:\n%s", want, dump)
		}
	}
	if strings.Contains(dump, "StartToken") {
		t.Errorf("AST dump should hide token back-references:\n%s", dump)
	}
	if got := stdout.String(); got != "console.log(k);\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	cfg := defaultConfig()
	cfg.indent = -1
	if err := run(cfg, nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Errorf("negative indent accepted")
	}

	cfg = defaultConfig()
	cfg.output = "out.ts"
	if err := run(cfg, []string{"a.bs", "b.bs"}, nil, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Errorf("-o with several inputs accepted")
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"main.bs":         "main.ts",
		"dir/prog.bangla": "dir/prog.ts",
		"noext":           "noext.ts",
	}
	for input, want := range tests {
		if got := outputPath(input); got != want {
			t.Errorf("outputPath(%q) = %q; want %q", input, got, want)
		}
	}
}
