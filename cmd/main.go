package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	transpiler "github.com/banglascript/transpiler"
	"github.com/banglascript/transpiler/internal/compiler_errors"
	l "github.com/banglascript/transpiler/internal/lexer"
	"github.com/kr/pretty"
	"github.com/sanity-io/litter"
	"golang.org/x/sync/errgroup"
)

type config struct {
	output     string
	dumpTokens bool
	dumpAst    bool
	indent     int
	verbose    bool
	jobs       int
}

var errBuildFailed = errors.New("build failed")

func main() {
	var cfg config
	flag.StringVar(&cfg.output, "o", "", "write output to `file` (single input only, default stdout)")
	flag.BoolVar(&cfg.dumpTokens, "tokens", false, "print the token stream to stderr")
	flag.BoolVar(&cfg.dumpAst, "ast", false, "print the syntax tree to stderr")
	flag.IntVar(&cfg.indent, "indent", 2, "spaces per indentation level")
	flag.BoolVar(&cfg.verbose, "v", false, "report each file as it is written")
	flag.IntVar(&cfg.jobs, "j", 4, "files transpiled in parallel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file.bs ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(cfg, flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errBuildFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(cfg config, files []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.indent < 0 {
		return fmt.Errorf("-indent must not be negative, got %d", cfg.indent)
	}

	switch {
	case len(files) == 0:
		src, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		return compileTo(cfg, "<stdin>", string(src), stdout, stderr)
	case len(files) == 1 || cfg.output != "":
		if len(files) > 1 {
			return fmt.Errorf("-o cannot be used with %d input files", len(files))
		}
		src, err := os.ReadFile(files[0])
		if err != nil {
			return err
		}
		if cfg.output == "" {
			return compileTo(cfg, files[0], string(src), stdout, stderr)
		}
		return compileFile(cfg, files[0], cfg.output, stderr)
	}

	// The transpiler is pure, so files only share the stderr writer.
	stderr = &syncWriter{w: stderr}
	g := new(errgroup.Group)
	g.SetLimit(max(cfg.jobs, 1))
	for _, file := range files {
		g.Go(func() error {
			return compileFile(cfg, file, outputPath(file), stderr)
		})
	}

	return g.Wait()
}

func compileFile(cfg config, input, output string, stderr io.Writer) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := compileTo(cfg, input, string(src), f, stderr); err != nil {
		f.Close()
		os.Remove(output)
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	if cfg.verbose {
		fmt.Fprintf(stderr, "%s -> %s\n", input, output)
	}

	return nil
}

func compileTo(cfg config, fileName, src string, w, stderr io.Writer) error {
	if cfg.dumpTokens {
		if err := dumpTokens(src, stderr); err != nil {
			compiler_errors.Report(stderr, fileName, err)
			return errBuildFailed
		}
	}

	program, err := transpiler.Parse(src)
	if err != nil {
		compiler_errors.Report(stderr, fileName, err)
		return errBuildFailed
	}

	if cfg.dumpAst {
		dumper := litter.Options{
			HidePrivateFields: true,
			FieldExclusions:   regexp.MustCompile(`^StartToken$`),
		}
		fmt.Fprintln(stderr, dumper.Sdump(program))
	}

	out, err := transpiler.TranspileProgram(program, transpiler.WithIndent(strings.Repeat(" ", cfg.indent)))
	if err != nil {
		compiler_errors.Report(stderr, fileName, err)
		return errBuildFailed
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

func dumpTokens(src string, w io.Writer) (err error) {
	eh := compiler_errors.NewErrorHandler()
	defer compiler_errors.Catch(eh, &err)

	lexer := l.NewLexer(src, eh)
	for _, token := range lexer.Tokenize() {
		pretty.Fprintf(w, "%s %# v\n", token.String(), token.Metadata)
	}

	return nil
}

func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".ts"
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}
