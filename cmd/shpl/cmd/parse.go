package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shpl-lang/shpl/internal/ast"
	"github.com/shpl-lang/shpl/internal/parser"
	"github.com/shpl-lang/shpl/internal/scripterr"
)

var parseCmd = &cobra.Command{
	Use:   "parse <script-path>",
	Short: "Parse a script and print its abstract syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	source := string(content)

	root, perr := parser.Parse(source)
	if perr != nil {
		fmt.Fprintln(os.Stderr, scripterr.Render(perr, source, args[0]))
		return fmt.Errorf("parsing failed")
	}

	fmt.Printf("Root (%d functions, %d statements)\n", len(root.Functions), len(root.Statements))
	for _, fn := range root.Functions {
		dumpFunction(fn, 1)
	}
	for _, stmt := range root.Statements {
		dumpStatement(stmt, 1)
	}
	return nil
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpFunction(fn *ast.Function, depth int) {
	fmt.Printf("%sfunc %s(%d params) -> %s\n", indent(depth), fn.Name, len(fn.Parameters), fn.ReturnType)
	for _, stmt := range fn.Body.Statements {
		dumpStatement(stmt, depth+1)
	}
}

func dumpStatement(stmt ast.Statement, depth int) {
	p := indent(depth)
	switch s := stmt.(type) {
	case *ast.Declaration:
		fmt.Printf("%sDeclaration %s: %s (mut=%v)\n", p, s.Name, s.Type, s.Mutable)
	case *ast.DeclarationAssignment:
		fmt.Printf("%sDeclarationAssignment %s (mut=%v)\n", p, strings.Join(s.Target.Names, ", "), s.Mutable)
		dumpExpression(s.Value, depth+1)
	case *ast.Assignment:
		fmt.Printf("%sAssignment %s\n", p, strings.Join(s.Target.Names, ", "))
		dumpExpression(s.Value, depth+1)
	case *ast.ExpressionStmt:
		fmt.Printf("%sExpressionStmt\n", p)
		dumpExpression(s.Value, depth+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", p)
		if s.Value != nil {
			dumpExpression(s.Value, depth+1)
		}
	case *ast.Exit:
		fmt.Printf("%sExit\n", p)
		dumpExpression(s.Value, depth+1)
	case *ast.Break:
		fmt.Printf("%sBreak\n", p)
	case *ast.Continue:
		fmt.Printf("%sContinue\n", p)
	default:
		fmt.Printf("%s%T\n", p, stmt)
	}
}

func dumpExpression(e *ast.Expression, depth int) {
	p := indent(depth)
	dumpBase(e.First, depth)
	for _, op := range e.Operations {
		fmt.Printf("%s%s\n", p, op.Operator)
		dumpBase(op.Right, depth+1)
	}
}

func dumpBase(b *ast.BaseExpression, depth int) {
	p := indent(depth)
	switch c := b.Content.(type) {
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral (%d segments)\n", p, len(c.Segments))
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral %v\n", p, c.Value)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral %d\n", p, c.Value)
	case *ast.CommandLiteral:
		fmt.Printf("%sCommandLiteral (%d words)\n", p, len(c.Words))
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", p, len(c.Elements))
	case *ast.TupleLiteral:
		fmt.Printf("%sTupleLiteral (%d elements)\n", p, len(c.Elements))
	case *ast.BracketExpression:
		fmt.Printf("%sBracketExpression\n", p)
		dumpExpression(c.Inner, depth+1)
	case *ast.VariableOrCall:
		fmt.Printf("%sVariableOrCall %s (call=%v)\n", p, c.Name, c.HasArgs)
	case *ast.WhileExpression:
		fmt.Printf("%sWhileExpression\n", p)
	case *ast.ForExpression:
		fmt.Printf("%sForExpression %s in ...\n", p, c.LoopVariable)
	case *ast.BranchExpression:
		fmt.Printf("%sBranchExpression (%d branches)\n", p, len(c.Branches))
	case *ast.BlockExpression:
		fmt.Printf("%sBlockExpression (%d statements)\n", p, len(c.Body.Statements))
	case *ast.PipelineExpression:
		fmt.Printf("%sPipelineExpression (%d stages)\n", p, len(c.Stages))
	default:
		fmt.Printf("%s%T\n", p, c)
	}
	for range b.Accessors {
		fmt.Printf("%s  .accessor\n", p)
	}
}
