package transpiler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"golang.org/x/sync/errgroup"
)

func TestTranspile(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "Empty",
			src:      "",
			expected: "",
		},
		{
			name:     "Hello World",
			src:      `দেখাও("Hello World!");`,
			expected: `console.log("Hello World!");`,
		},
		{
			name:     "Variable",
			src:      "ধরি সংখ্যা ক = 5;",
			expected: "let k: number = 5;",
		},
		{
			name:     "Bengali Digits",
			src:      "ধরি সংখ্যা পাই = ৩.১৪;",
			expected: "let paai: number = 3.14;",
		},
		{
			name:     "If Else",
			src:      `যদি (সত্য) { দেখাও("A"); } নয়তো { দেখাও("B"); }`,
			expected: "if (true) {\n  console.log(\"A\");\n}\nelse {\n  console.log(\"B\");\n}",
		},
		{
			name:     "Function",
			src:      "কাঠামো sum(সংখ্যা a, সংখ্যা b) { ফেরত a; }",
			expected: "function sum(a: number, b: number) {\n  return a;\n}",
		},
		{
			name:     "Arrays",
			src:      "ধরি বিন্যাস তালিকা = [১, \"দুই\", মিথ্যা];\nধরি দড়ি_বিন্যাস নামগুলো = [];",
			expected: "let taalikaa: any[] = [1, \"দুই\", false];\nlet naamgulo: string[] = [];",
		},
		{
			name:     "For",
			src:      "জন্য (ধরি সংখ্যা i = 0; i < n; i = i + step) { দেখাও(i); }",
			expected: "for (let i: number = 0; i < n; i = i + step) {\n  console.log(i);\n}",
		},
		{
			name:     "While",
			src:      "যতক্ষণ (ক < 10) { ক = ক + 1; }",
			expected: "while (k < 10) {\n  k = k + 1;\n}",
		},
		{
			name:     "Do While",
			src:      "কর { দেখাও(ক); } যতক্ষণ (ক > 0);",
			expected: "do {\n  console.log(k);\n} while (k > 0);",
		},
		{
			name: "Class",
			src: `শ্রেণী Person {
	ধরি দড়ি name = "";
	নির্মাতা(দড়ি n) {
		name = n;
	}
	পদ্ধতি greet() {
		দেখাও(name);
	}
}
p = নতুন Person("Rahim");
p.greet();`,
			expected: "class Person {\n" +
				"  name: string = \"\";\n" +
				"  constructor(n: string) {\n" +
				"    name = n;\n" +
				"  }\n" +
				"  greet() {\n" +
				"    console.log(name);\n" +
				"  }\n" +
				"}\n" +
				"let p = new Person(\"Rahim\");\n" +
				"p.greet();",
		},
		{
			name:     "Joiner In Identifier",
			src:      "ধরি সংখ্যা র\u200D্যাব = 1;",
			expected: "let rjaab: number = 1;",
		},
		{
			name:     "Vocalic Letters",
			src:      "ধরি সংখ্যা \u09E0ক = 1;\nধরি সংখ্যা কঽ = 2;",
			expected: "let rrik: number = 1;\nlet k: number = 2;",
		},
		{
			name:     "Comments Dropped",
			src:      "// greeting\nদেখাও(1); /* done */",
			expected: "console.log(1);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transpile(tt.src)
			if err != nil {
				t.Fatalf("Transpile failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("output differs:\n%s", strings.Join(pretty.Diff(strings.Split(got, "\n"), strings.Split(tt.expected, "\n")), "\n"))
			}
		})
	}
}

func TestTranspileWithIndent(t *testing.T) {
	got, err := Transpile("যদি (সত্য) { দেখাও(1); }", WithIndent("    "))
	if err != nil {
		t.Fatalf("Transpile failed: %v", err)
	}

	if want := "if (true) {\n    console.log(1);\n}"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestTranspileSyntaxError(t *testing.T) {
	out, err := Transpile(`দেখাও("x")`)
	if out != "" {
		t.Errorf("partial output %q returned with an error", out)
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "syntax error:") {
		t.Errorf("message %q lacks the syntax error prefix", err.Error())
	}
	if syntaxErr.Line != 1 || syntaxErr.Column != 11 {
		t.Errorf("position = %d:%d; want 1:11", syntaxErr.Line, syntaxErr.Column)
	}
}

func TestTranspileInvalidIdentifier(t *testing.T) {
	_, err := Transpile("ধরি সংখ্যা ্১ = 1;")

	var semanticErr *SemanticError
	if !errors.As(err, &semanticErr) {
		t.Fatalf("expected *SemanticError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "semantic error:") {
		t.Errorf("message %q lacks the semantic error prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "'্১'") {
		t.Errorf("message %q does not quote the source identifier", err.Error())
	}
	if semanticErr.Line != 1 || semanticErr.Column != 12 {
		t.Errorf("position = %d:%d; want 1:12", semanticErr.Line, semanticErr.Column)
	}
}

func TestParseThenTranspileProgram(t *testing.T) {
	program, err := Parse("দেখাও(ক);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		got, err := TranspileProgram(program)
		if err != nil {
			t.Fatalf("TranspileProgram failed: %v", err)
		}
		if got != "console.log(k);" {
			t.Errorf("run %d: got %q", i, got)
		}
	}
}

func TestTranspileConcurrently(t *testing.T) {
	const workers = 16

	results := make([]string, workers)
	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			out, err := Transpile(fmt.Sprintf("ধরি সংখ্যা ক্ষমা = %d;", i))
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("Transpile failed: %v", err)
	}
	for i, got := range results {
		if want := fmt.Sprintf("let kshmaa: number = %d;", i); got != want {
			t.Errorf("worker %d: got %q; want %q", i, got, want)
		}
	}
}
