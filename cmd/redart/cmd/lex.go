package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/redart/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexOnlyType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a redart source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyType, "only-type", false, "print only the token type, not its literal")
}

func runLex(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	for _, tok := range lexer.Lex(string(src), path) {
		printToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return nil
}

func printToken(tok lexer.Token) {
	if lexOnlyType {
		fmt.Println(tok.Type)
		return
	}
	out := fmt.Sprintf("%-12s %q", tok.Type, tok.Literal)
	if lexShowPos {
		out += " @" + tok.Pos.String()
	}
	fmt.Println(out)
}
