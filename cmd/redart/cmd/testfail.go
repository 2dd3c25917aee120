package cmd

import "github.com/spf13/cobra"

// testfailDir mirrors fixtureDir for "must fail" programs: every
// fixture here is expected to abort via a fatal diagnostic.
const testfailDir = "testdata/testfail"

var testfailCmd = &cobra.Command{
	Use:   "testfail [lex|parse|eval] [name-or-index]",
	Short: "Run fixtures under testdata/testfail, asserting each one fails",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runFixtures(testfailDir, true),
}

func init() {
	rootCmd.AddCommand(testfailCmd)
	testfailCmd.Flags().Bool("dump-ast", false, "print each fixture's parsed AST before running it")
	testfailCmd.Flags().Bool("trace", false, "enable evaluator trace output on stderr for eval fixtures")
}
