package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/distlang/executor"
	"go.creack.net/distlang/parser"
)

const usage = "usage: distlang [-a] [-k] [-m max] file"

var errUsage = errors.New(usage)

type config struct {
	dumpAST     bool
	keepGoing   bool
	maxOutcomes int
	file        string
}

func parseArgs(args []string) (config, error) {
	cfg := config{maxOutcomes: executor.DefaultMaxOutcomes}

	opts, optind, err := getopt.Getopts(args, "ahkm:")
	if err != nil {
		return cfg, fmt.Errorf("%w\n%s", err, usage)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			cfg.dumpAST = true
		case 'k':
			cfg.keepGoing = true
		case 'm':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				return cfg, fmt.Errorf("invalid -m value %q: must be a positive integer", opt.Value)
			}
			cfg.maxOutcomes = n
		case 'h':
			return cfg, errUsage
		}
	}
	rest := args[optind:]
	if len(rest) != 1 {
		return cfg, errUsage
	}
	cfg.file = rest[0]
	return cfg, nil
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	red := color.New(color.FgRed, color.Bold)
	fail := func(err error) int {
		logger.Printf("%s %s", red.Sprint("distlang:"), err)
		return 1
	}

	cfg, err := parseArgs(args)
	if err != nil {
		return fail(err)
	}

	src, err := os.ReadFile(cfg.file)
	if err != nil {
		return fail(fmt.Errorf("read program: %w", err))
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		return fail(fmt.Errorf("%s:%w", cfg.file, err))
	}
	if cfg.dumpAST {
		_, _ = pretty.Fprintf(stderr, "%# v\n", prog)
	}

	opts := []executor.Option{executor.WithMaxOutcomes(cfg.maxOutcomes)}
	if cfg.keepGoing {
		opts = append(opts, executor.WithKeepGoing(stderr))
	}
	ex := executor.New(stdout, opts...)
	err = ex.Evaluate(prog)
	if cfg.dumpAST {
		dumpEnv(stderr, ex.Env())
	}
	if err != nil {
		if cfg.keepGoing {
			// Each failure was already reported.
			return 1
		}
		return fail(err)
	}
	return 0
}

// dumpEnv prints the final bindings, one per line. Distributions are shown by
// kind only.
func dumpEnv(w io.Writer, env *executor.Env) {
	for _, name := range env.Names() {
		if v, ok := env.Number(name); ok {
			fmt.Fprintf(w, "%s = %s\n", name, executor.FormatNumber(v))
			continue
		}
		d, _ := env.Dist(name)
		fmt.Fprintf(w, "%s = %T\n", name, d)
	}
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
