package deriving

import (
	"testing"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

func testScope() *symbols.SymbolTable {
	table := symbols.NewEmptySymbolTable()
	RegisterBuiltins(table)
	defineTestClass(table, "Show", []typesystem.TVar{
		{Name: "a", KindVal: typesystem.Star},
	})
	defineTestClass(table, "Functor", []typesystem.TVar{
		{Name: "f", KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star)},
	})
	return table
}

// defineTestClass registers a class plus the canonical companion: derived
// is generic over the class's own parameters.
func defineTestClass(table *symbols.SymbolTable, name string, params []typesystem.TVar) {
	table.DefineClass(name, params, "test")

	kinds := make([]typesystem.Kind, 0, len(params)+1)
	args := make([]typesystem.Type, len(params))
	for i, p := range params {
		kinds = append(kinds, p.Kind())
		args[i] = p
	}
	kinds = append(kinds, typesystem.Star)
	con := typesystem.TCon{Name: name, KindVal: typesystem.MakeArrow(kinds...)}

	var derived typesystem.Type = con
	if len(params) > 0 {
		derived = typesystem.TForall{
			Vars: params,
			Type: typesystem.TApp{Constructor: con, Args: args},
		}
	}
	companion := symbols.NewEnclosedSymbolTable(table, symbols.ScopeMember)
	companion.Define(config.DerivedFactoryName, derived, "test")
	table.DefineCompanion(name, companion)
}

type paramSpec struct {
	name string
	kind typesystem.Kind
}

func declOf(name string, params []paramSpec, derives ...string) *ast.TypeDeclarationStatement {
	typeParams := make([]*ast.Identifier, len(params))
	for i, p := range params {
		typeParams[i] = &ast.Identifier{
			Token: token.Token{Type: token.IDENT, Lexeme: p.name, Line: 1},
			Value: p.name,
			Kind:  p.kind,
		}
	}
	derivingList := make([]*ast.NamedType, len(derives))
	for i, d := range derives {
		tok := token.Token{Type: token.IDENT_UPPER, Lexeme: d, Line: 1, Column: 10 + i}
		derivingList[i] = &ast.NamedType{Token: tok, Name: &ast.Identifier{Token: tok, Value: d}}
	}
	return &ast.TypeDeclarationStatement{
		Token:          token.Token{Type: token.TYPE, Lexeme: "type", Line: 1, Column: 1},
		Name:           &ast.Identifier{Token: token.Token{Type: token.IDENT_UPPER, Lexeme: name, Line: 1}, Value: name},
		TypeParameters: typeParams,
		Deriving:       derivingList,
	}
}

func runSignaturePhase(t *testing.T, decl *ast.TypeDeclarationStatement, table *symbols.SymbolTable) (*Session, []*diagnostics.DiagnosticError) {
	t.Helper()
	declaring := NewDeclaringType(decl, table)
	session := NewSession(declaring)
	errs := session.ProcessRequests(decl.Deriving, table)
	return session, errs
}

func TestPointwiseSingleParameter(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Show")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	pending := session.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if pending[0].Name != "given_Show" {
		t.Errorf("instance name = %s, want given_Show", pending[0].Name)
	}
	want := "forall a. (Show<a>) -> Show<Box<a>>"
	if got := pending[0].Signature.String(); got != want {
		t.Errorf("signature = %s, want %s", got, want)
	}
}

func TestZeroParameterTypeYieldsValue(t *testing.T) {
	table := testScope()

	tests := []struct {
		name    string
		derive  string
		wantSig string
	}{
		{name: "plain class", derive: "Show", wantSig: "Show<Unit>"},
		{name: "paired equality", derive: "Equiv", wantSig: "Equiv<Unit, Unit>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := declOf("Unit", nil, tt.derive)
			session, errs := runSignaturePhase(t, decl, table)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			pending := session.Pending()
			if len(pending) != 1 {
				t.Fatalf("pending = %d, want 1", len(pending))
			}
			sig := pending[0].Signature
			if _, ok := sig.(typesystem.TForall); ok {
				t.Errorf("zero-parameter type produced a generic method")
			}
			if got := sig.String(); got != tt.wantSig {
				t.Errorf("signature = %s, want %s", got, tt.wantSig)
			}
		})
	}
}

func TestNaturalMatch(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Functor")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	pending := session.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	// The bare constructor, unapplied
	if got := pending[0].Signature.String(); got != "Functor<Box>" {
		t.Errorf("signature = %s, want Functor<Box>", got)
	}
}

func TestPairedEquivTwoParameters(t *testing.T) {
	table := testScope()
	decl := declOf("Pair", []paramSpec{{name: "a"}, {name: "b"}}, "Equiv")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	pending := session.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}

	forall, ok := pending[0].Signature.(typesystem.TForall)
	if !ok {
		t.Fatalf("signature is not generic: %s", pending[0].Signature)
	}
	if len(forall.Vars) != 4 {
		t.Errorf("type params = %d, want 4", len(forall.Vars))
	}
	fn, ok := forall.Type.(typesystem.TFunc)
	if !ok {
		t.Fatalf("signature body is not a method type")
	}
	if len(fn.Params) != 2 {
		t.Errorf("evidence params = %d, want 2", len(fn.Params))
	}

	want := "forall a_L a_R b_L b_R. (Equiv<a_L, a_R>, Equiv<b_L, b_R>) -> Equiv<Pair<a_L, b_L>, Pair<a_R, b_R>>"
	if got := pending[0].Signature.String(); got != want {
		t.Errorf("signature = %s, want %s", got, want)
	}
}

func TestPairedEquivHigherKindedRow(t *testing.T) {
	table := testScope()
	arrow := typesystem.MakeArrow(typesystem.Star, typesystem.Star)
	decl := declOf("App", []paramSpec{{name: "f", kind: arrow}, {name: "a"}}, "Equiv")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forall := session.Pending()[0].Signature.(typesystem.TForall)

	// Higher-kinded rows contribute copies but no evidence
	if len(forall.Vars) != 4 {
		t.Errorf("type params = %d, want 4", len(forall.Vars))
	}
	fn := forall.Type.(typesystem.TFunc)
	if len(fn.Params) != 1 {
		t.Errorf("evidence params = %d, want 1", len(fn.Params))
	}
	want := "Equiv<App<f_L, a_L>, App<f_R, a_R>>"
	if got := fn.ReturnType.String(); got != want {
		t.Errorf("result = %s, want %s", got, want)
	}
}

func TestDuplicateDerivation(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Show", "Show")

	session, errs := runSignaturePhase(t, decl, table)
	if len(session.Pending()) != 1 {
		t.Fatalf("pending = %d, want 1", len(session.Pending()))
	}
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	if errs[0].Code != diagnostics.ErrD004 {
		t.Errorf("code = %s, want %s", errs[0].Code, diagnostics.ErrD004)
	}
	// Attributed to the second occurrence
	if errs[0].Token.Column != decl.Deriving[1].Token.Column {
		t.Errorf("error position = %d, want second occurrence at %d",
			errs[0].Token.Column, decl.Deriving[1].Token.Column)
	}
}

func TestAliasedRequestsStayDistinct(t *testing.T) {
	table := testScope()
	table.DefineClassAlias("Display", "Show", "")
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Show", "Display")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	pending := session.Pending()
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].Name != "given_Show" || pending[1].Name != "given_Display" {
		t.Errorf("names = %s, %s", pending[0].Name, pending[1].Name)
	}
}

func TestNoTypeParametersError(t *testing.T) {
	table := testScope()
	defineTestClass(table, "Marker", nil)
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Marker")

	session, errs := runSignaturePhase(t, decl, table)
	if len(session.Pending()) != 0 {
		t.Errorf("pending = %d, want 0", len(session.Pending()))
	}
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrD002 {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrD002)
	}
}

func TestKindUnificationFailure(t *testing.T) {
	table := testScope()
	// Pair has kind * -> * -> *: neither the whole-type nor the
	// pointwise arrangement fits Functor's (* -> *) parameter.
	decl := declOf("Pair", []paramSpec{{name: "a"}, {name: "b"}}, "Functor")

	session, errs := runSignaturePhase(t, decl, table)
	if len(session.Pending()) != 0 {
		t.Errorf("pending = %d, want 0", len(session.Pending()))
	}
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrD003 {
		t.Fatalf("errors = %v, want one %s", errs, diagnostics.ErrD003)
	}
}

func TestMalformedRequests(t *testing.T) {
	table := testScope()
	table.Define("notAClass", typesystem.TCon{Name: "Int", KindVal: typesystem.Star}, "")

	tests := []struct {
		name     string
		derive   string
		wantCode diagnostics.ErrorCode
	}{
		{name: "undeclared", derive: "Missing", wantCode: diagnostics.ErrA001},
		{name: "not a class", derive: "notAClass", wantCode: diagnostics.ErrD001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := declOf("Box", []paramSpec{{name: "a"}}, tt.derive)
			session, errs := runSignaturePhase(t, decl, table)
			if len(session.Pending()) != 0 {
				t.Errorf("pending = %d, want 0", len(session.Pending()))
			}
			if len(errs) != 1 || errs[0].Code != tt.wantCode {
				t.Fatalf("errors = %v, want one %s", errs, tt.wantCode)
			}
		})
	}
}

func TestFailedRequestDoesNotStopLaterRequests(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Missing", "Show")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	if len(session.Pending()) != 1 || session.Pending()[0].Name != "given_Show" {
		t.Fatalf("the request after the failure was not processed")
	}
}

func TestRegistrationVisibleImmediately(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Show")

	session, _ := runSignaturePhase(t, decl, table)
	sym, ok := session.Declaring.Members.Find("given_Show")
	if !ok {
		t.Fatalf("placeholder symbol not registered")
	}
	if !sym.IsPending || !sym.IsMethod || !sym.IsSynthetic {
		t.Errorf("placeholder flags wrong: %+v", sym)
	}
	if sym.Kind != symbols.GivenSymbol {
		t.Errorf("placeholder kind = %d, want GivenSymbol", sym.Kind)
	}
}

func TestRequestsProcessedInWrittenOrder(t *testing.T) {
	table := testScope()
	decl := declOf("Box", []paramSpec{{name: "a"}}, "Functor", "Show", "Equiv")

	session, errs := runSignaturePhase(t, decl, table)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []string{"given_Functor", "given_Show", "given_Equiv"}
	pending := session.Pending()
	if len(pending) != len(want) {
		t.Fatalf("pending = %d, want %d", len(pending), len(want))
	}
	for i, name := range want {
		if pending[i].Name != name {
			t.Errorf("pending[%d] = %s, want %s", i, pending[i].Name, name)
		}
	}
}
