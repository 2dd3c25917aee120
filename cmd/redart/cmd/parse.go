package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/redart/internal/ast"
	"github.com/cwbudde/redart/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a redart source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParseCmd(_ *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	file := parser.ParseFile(string(src), path)
	dumpFile(file)
	return nil
}

func dumpFile(f *ast.File) {
	fmt.Printf("File %s\n", f.Path)
	for _, imp := range f.Directives.Imports {
		fmt.Printf("  import %q\n", imp)
	}
	for _, decl := range f.Decls {
		dumpNode(decl, 1)
	}
	for _, cls := range f.Classes {
		dumpClass(cls, 1)
	}
}

func dumpClass(c *ast.ClassDecl, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Printf("%sclass %s\n", pad, c.Name)
	for _, f := range c.Fields {
		fmt.Printf("%s  field %s %s\n", pad, f.TypeName, f.Name)
		if f.Value != nil {
			dumpNode(f.Value, indent+2)
		}
	}
	for _, ctor := range c.Constructors {
		dumpNode(ctor, indent+1)
	}
	for _, m := range c.Methods {
		dumpNode(m, indent+1)
	}
}

func dumpNode(node ast.Node, indent int) {
	pad := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.FunctionDecl:
		fmt.Printf("%sfun %s %s(%d params)\n", pad, n.ReturnType, n.Name, len(n.Params))
		dumpNode(n.Body, indent+1)
	case *ast.TopVarDecl:
		kind := "var"
		if n.Const {
			kind = "const"
		}
		fmt.Printf("%s%s %s %s\n", pad, kind, n.TypeName, n.Name)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}
	case *ast.Constructor:
		fmt.Printf("%sctor %s(%d params, %d inits)\n", pad, n.Name, len(n.Params), len(n.Inits))
		dumpNode(n.Body, indent+1)

	case *ast.BlockStatement:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.VarStatement:
		fmt.Printf("%svar %s %s\n", pad, n.TypeName, n.Name)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}
	case *ast.AssignStatement:
		fmt.Printf("%sassign\n", pad)
		dumpNode(n.Target, indent+1)
		dumpNode(n.Value, indent+1)
	case *ast.ExpressionStatement:
		dumpNode(n.Expr, indent)
	case *ast.EmptyStatement:
		fmt.Printf("%s;\n", pad)
	case *ast.Conditional:
		fmt.Printf("%sconditional (%d branches)\n", pad, len(n.Branches))
		for _, b := range n.Branches {
			if b.Cond != nil {
				dumpNode(b.Cond, indent+1)
			}
			dumpNode(b.Body, indent+1)
		}
	case *ast.WhileStatement:
		fmt.Printf("%swhile\n", pad)
		dumpNode(n.Cond, indent+1)
		dumpNode(n.Body, indent+1)
	case *ast.DoWhileStatement:
		fmt.Printf("%sdo-while\n", pad)
		dumpNode(n.Body, indent+1)
		dumpNode(n.Cond, indent+1)
	case *ast.ForStatement:
		fmt.Printf("%sfor\n", pad)
		if n.Init != nil {
			dumpNode(n.Init, indent+1)
		}
		if n.Cond != nil {
			dumpNode(n.Cond, indent+1)
		}
		if n.Post != nil {
			dumpNode(n.Post, indent+1)
		}
		dumpNode(n.Body, indent+1)
	case *ast.ReturnStatement:
		fmt.Printf("%sreturn\n", pad)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}

	case *ast.BinaryExpression:
		fmt.Printf("%sbinary %s\n", pad, n.Operator)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.UnaryExpression:
		fmt.Printf("%sunary %s\n", pad, n.Operator)
		dumpNode(n.Operand, indent+1)
	case *ast.IncDecExpression:
		fmt.Printf("%s%s (prefix=%v)\n", pad, n.Operator, n.Prefix)
		dumpNode(n.Target, indent+1)
	case *ast.CallExpression:
		fmt.Printf("%scall %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	case *ast.MethodCallExpression:
		fmt.Printf("%smethod call .%s (%d args)\n", pad, n.Name, len(n.Args))
		dumpNode(n.Receiver, indent+1)
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	case *ast.AccessExpression:
		fmt.Printf("%saccess .%s\n", pad, n.Field)
		dumpNode(n.Object, indent+1)
	case *ast.IndexExpression:
		fmt.Printf("%sindex\n", pad)
		dumpNode(n.Collection, indent+1)
		dumpNode(n.Index, indent+1)
	case *ast.ListLiteral:
		fmt.Printf("%slist (%d elements)\n", pad, len(n.Elements))
		for _, e := range n.Elements {
			dumpNode(e, indent+1)
		}
	case *ast.Identifier:
		fmt.Printf("%sidentifier %s\n", pad, n.Name)
	case *ast.IntegerLiteral:
		fmt.Printf("%sint %d\n", pad, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sfloat %g\n", pad, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sbool %v\n", pad, n.Value)
	case *ast.NullLiteral:
		fmt.Printf("%snull\n", pad)
	case *ast.StringLiteral:
		fmt.Printf("%sstring %q (%d interpolations)\n", pad, n.Value, len(n.Interps))
	case *ast.ThisExpression:
		fmt.Printf("%sthis\n", pad)
	case *ast.SuperExpression:
		fmt.Printf("%ssuper\n", pad)

	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}
