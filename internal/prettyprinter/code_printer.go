package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/fernlang/fern/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// PrintDeclaration renders a type declaration with its deriving clause
// and members, synthesized instances included.
func PrintDeclaration(decl *ast.TypeDeclarationStatement) string {
	p := NewCodePrinter()
	p.printDeclaration(decl)
	return p.String()
}

// PrintGiven renders one instance declaration on a single line. Bodies
// are included when withBody is set.
func PrintGiven(given *ast.GivenDeclaration, withBody bool) string {
	p := NewCodePrinter()
	p.printGiven(given, withBody)
	return p.String()
}

func (p *CodePrinter) printDeclaration(decl *ast.TypeDeclarationStatement) {
	p.write("type ")
	p.write(decl.Name.Value)
	if len(decl.TypeParameters) > 0 {
		names := make([]string, len(decl.TypeParameters))
		for i, param := range decl.TypeParameters {
			names[i] = param.Value
		}
		p.write("<" + strings.Join(names, ", ") + ">")
	}
	if len(decl.Deriving) > 0 {
		names := make([]string, len(decl.Deriving))
		for i, req := range decl.Deriving {
			names[i] = req.Name.Value
		}
		p.write(" derives " + strings.Join(names, ", "))
	}
	if len(decl.Members) == 0 {
		p.write("\n")
		return
	}
	p.write(" {\n")
	p.indent++
	for _, member := range decl.Members {
		if given, ok := member.(*ast.GivenDeclaration); ok {
			p.writeIndent()
			p.printGiven(given, true)
			p.write("\n")
		}
	}
	p.indent--
	p.write("}\n")
}

func (p *CodePrinter) printGiven(given *ast.GivenDeclaration, withBody bool) {
	p.write("given ")
	p.write(given.Name.Value)
	if len(given.TypeParams) > 0 {
		names := make([]string, len(given.TypeParams))
		for i, param := range given.TypeParams {
			names[i] = param.Value
		}
		p.write("<" + strings.Join(names, ", ") + ">")
	}
	if len(given.EvidenceParams) > 0 {
		parts := make([]string, len(given.EvidenceParams))
		for i, param := range given.EvidenceParams {
			parts[i] = param.Name.Value + ": " + param.Type.String()
		}
		p.write("(" + strings.Join(parts, ", ") + ")")
	}
	p.write(": ")
	p.write(given.ResultType.String())
	if withBody && given.Body != nil {
		p.write(" = ")
		p.printExpr(given.Body)
	}
}

func (p *CodePrinter) printExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Identifier:
		p.write(e.Value)
	case *ast.SelectExpression:
		p.printExpr(e.Receiver)
		p.write(".")
		p.write(e.Member.Value)
	default:
		p.write("<???>")
	}
}
