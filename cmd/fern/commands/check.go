package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/checker"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/loader"
	"github.com/fernlang/fern/internal/pipeline"
	"github.com/fernlang/fern/internal/prettyprinter"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check [unit.yaml]",
	Short: "Derive instances for every declaration in a unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print instance bodies")
}

func runCheck(path string) error {
	unit, err := loader.Load(path)
	if err != nil {
		return err
	}
	table, decls, err := unit.Install()
	if err != nil {
		return err
	}

	ctx := pipeline.NewContext(table, checker.New())
	ctx.Declarations = decls

	p := pipeline.New(&pipeline.SignatureProcessor{}, &pipeline.BodyProcessor{})
	ctx = p.Run(ctx)

	for _, decl := range ctx.Results {
		for _, member := range decl.Members {
			given, ok := member.(*ast.GivenDeclaration)
			if !ok || !given.Synthetic {
				continue
			}
			fmt.Printf("%s: %s\n", decl.Name.Value, prettyprinter.PrintGiven(given, checkVerbose))
		}
	}

	if len(ctx.Errors) > 0 {
		printer := diagnostics.NewPrinter(os.Stderr)
		printer.PrintAll(ctx.Errors)
		return fmt.Errorf("%d diagnostic(s)", len(ctx.Errors))
	}
	return nil
}

