package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/redart/internal/errors"
	"github.com/cwbudde/redart/internal/interp"
	"github.com/cwbudde/redart/internal/lexer"
	"github.com/cwbudde/redart/internal/parser"
	"github.com/spf13/cobra"
)

// fixtureDir is the conventional location for "must succeed" programs:
// one `<name>.dart` paired with an optional `<name>.expected` holding
// the exact stdout an `eval` run must produce.
const fixtureDir = "testdata/tests"

var testCmd = &cobra.Command{
	Use:   "test [lex|parse|eval] [name-or-index]",
	Short: "Run fixtures under testdata/tests, asserting each one succeeds",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runFixtures(fixtureDir, false),
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().Bool("dump-ast", false, "print each fixture's parsed AST before running it")
	testCmd.Flags().Bool("trace", false, "enable evaluator trace output on stderr for eval fixtures")
}

// fixture is one `<name>.dart` file under a fixture directory, plus
// its optional expected-stdout sibling.
type fixture struct {
	name string
	path string
}

func loadFixtures(dir string) ([]fixture, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.dart"))
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	fixtures := make([]fixture, len(entries))
	for i, p := range entries {
		fixtures[i] = fixture{name: strings.TrimSuffix(filepath.Base(p), ".dart"), path: p}
	}
	return fixtures, nil
}

// selectFixtures narrows all to the one named or indexed by selector,
// or returns all of them when selector is empty.
func selectFixtures(all []fixture, selector string) ([]fixture, error) {
	if selector == "" {
		return all, nil
	}
	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 || idx >= len(all) {
			return nil, fmt.Errorf("fixture index %d out of range (0..%d)", idx, len(all)-1)
		}
		return []fixture{all[idx]}, nil
	}
	for _, f := range all {
		if f.name == selector {
			return []fixture{f}, nil
		}
	}
	return nil, fmt.Errorf("no fixture named %q", selector)
}

// runFixtures returns a RunE for `test`/`testfail`: it parses an
// optional [lex|parse|eval] mode and [name-or-index] selector from
// args, then runs every matching fixture under dir, expecting failure
// when expectFailure is true.
func runFixtures(dir string, expectFailure bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dumpAST, _ := cmd.Flags().GetBool("dump-ast")
		trace, _ := cmd.Flags().GetBool("trace")

		mode := "eval"
		var selector string
		switch len(args) {
		case 0:
		case 1:
			if args[0] == "lex" || args[0] == "parse" || args[0] == "eval" {
				mode = args[0]
			} else {
				selector = args[0]
			}
		case 2:
			mode = args[0]
			selector = args[1]
		}

		all, err := loadFixtures(dir)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}
		fixtures, err := selectFixtures(all, selector)
		if err != nil {
			return err
		}
		if len(fixtures) == 0 {
			exitWithError("no fixtures found under %s", dir)
		}

		passed, failed := 0, 0
		for _, f := range fixtures {
			ok, msg := runFixture(f, mode, expectFailure, dumpAST, trace)
			if ok {
				passed++
				fmt.Printf("PASS %s\n", f.name)
			} else {
				failed++
				fmt.Printf("FAIL %s: %s\n", f.name, msg)
			}
		}

		fmt.Printf("%d passed, %d failed\n", passed, failed)
		if failed > 0 {
			return fmt.Errorf("%d fixture(s) failed", failed)
		}
		return nil
	}
}

// runFixture runs one fixture under mode, recovering a Fatal abort
// (raised as a panic because Debug is forced true for the duration)
// so a testfail fixture's expected failure can be observed in-process
// instead of exiting the whole CLI.
func runFixture(f fixture, mode string, expectFailure, dumpAST, trace bool) (ok bool, detail string) {
	src, err := os.ReadFile(f.path)
	if err != nil {
		return false, err.Error()
	}

	if dumpAST {
		dumpFile(parser.ParseFile(string(src), f.path))
	}

	prevDebug := errors.Debug
	errors.Debug = true
	defer func() { errors.Debug = prevDebug }()

	failed := false
	var failMsg string
	func() {
		defer func() {
			if r := recover(); r != nil {
				failed = true
				failMsg = fmt.Sprint(r)
			}
		}()

		switch mode {
		case "lex":
			for _, tok := range lexer.Lex(string(src), f.path) {
				if tok.Type == lexer.EOF {
					break
				}
			}
		case "parse":
			parser.ParseFile(string(src), f.path)
		case "eval":
			var buf bytes.Buffer
			state := interp.New(&buf)
			state.Trace = trace
			interp.Run(state, f.path)
			if !expectFailure {
				checkExpectedOutput(f, buf.String())
			}
		}
	}()

	if expectFailure {
		if failed {
			return true, ""
		}
		return false, "expected failure, program ran to completion"
	}
	if failed {
		return false, failMsg
	}
	return true, ""
}

// checkExpectedOutput compares actual against "<name>.expected" when
// that sibling file exists, panicking (caught by runFixture's recover,
// same as any other fatal) on mismatch so both paths report failure
// the same way.
func checkExpectedOutput(f fixture, actual string) {
	expectedPath := strings.TrimSuffix(f.path, ".dart") + ".expected"
	want, err := os.ReadFile(expectedPath)
	if err != nil {
		return
	}
	if actual != string(want) {
		panic(fmt.Sprintf("output mismatch:\n--- expected ---\n%s--- actual ---\n%s", want, actual))
	}
}
