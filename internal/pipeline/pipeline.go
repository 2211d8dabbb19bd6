// Package pipeline wires the derivation stage into an ordered sequence
// of processors over one compilation unit. The signature processor runs
// during early processing of each declaring type; the body processor
// runs once the unit's declarations are otherwise complete.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/deriving"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
)

// Context carries one compilation unit through the pipeline.
type Context struct {
	ID           uuid.UUID
	Table        *symbols.SymbolTable
	Declarations []*ast.TypeDeclarationStatement
	Sessions     []*deriving.Session
	Results      []*ast.TypeDeclarationStatement
	Checker      deriving.Checker
	Errors       []*diagnostics.DiagnosticError
}

func NewContext(table *symbols.SymbolTable, check deriving.Checker) *Context {
	return &Context{
		ID:      uuid.New(),
		Table:   table,
		Checker: check,
	}
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Processing continues on errors so every
// stage's diagnostics are collected.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// SignatureProcessor runs the signature phase: one session per
// declaring type with a deriving clause, requests processed in written
// order, placeholder symbols registered immediately.
type SignatureProcessor struct{}

func (sp *SignatureProcessor) Process(ctx *Context) *Context {
	for _, decl := range ctx.Declarations {
		declaring := deriving.NewDeclaringType(decl, ctx.Table)
		session := deriving.NewSession(declaring)
		ctx.Errors = append(ctx.Errors, session.ProcessRequests(decl.Deriving, ctx.Table)...)
		ctx.Sessions = append(ctx.Sessions, session)
	}
	return ctx
}

// BodyProcessor runs the body phase: every session's pending instances
// are materialized and the finished definitions merged into their
// declaration. Sessions are consumed here.
type BodyProcessor struct{}

func (bp *BodyProcessor) Process(ctx *Context) *Context {
	for _, decl := range ctx.Declarations {
		session := findSession(ctx.Sessions, decl.Name.Value)
		if session == nil || len(session.Pending()) == 0 {
			ctx.Results = append(ctx.Results, decl)
			continue
		}
		defs, errs := session.MaterializeAll(ctx.Checker, ctx.Table)
		ctx.Errors = append(ctx.Errors, errs...)
		ctx.Results = append(ctx.Results, deriving.Merge(decl, defs))
	}
	ctx.Sessions = nil
	return ctx
}

func findSession(sessions []*deriving.Session, name string) *deriving.Session {
	for _, session := range sessions {
		if session.Declaring.Name == name {
			return session
		}
	}
	return nil
}
