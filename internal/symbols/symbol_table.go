package symbols

import (
	"sort"

	"github.com/fernlang/fern/internal/typesystem"
)

type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	TypeSymbol
	ClassSymbol  // Symbol for a capability class (typeclass)
	ModuleSymbol // Symbol for a module / companion value
	GivenSymbol  // Symbol for an automatically-resolved instance
)

type ScopeType int

const (
	ScopePrelude ScopeType = iota // Built-in symbols
	ScopeGlobal                   // User code top-level
	ScopeMember                   // Members of a declaring type
	ScopeFunction
)

type Symbol struct {
	Name         string
	Type         typesystem.Type
	Kind         SymbolKind
	IsPending    bool // Signature registered, body not yet materialized
	IsMethod     bool
	IsSynthetic  bool   // Created by the compiler, not written by the author
	IsStablePath bool   // Qualifying path cannot vary at runtime
	OriginModule string // Module where the symbol was originally defined
}

// ClassInfo describes a capability class: its ordered type parameters,
// each carrying its declared kind.
type ClassInfo struct {
	Name       string
	TypeParams []typesystem.TVar
}

// SymbolTable is a lexically scoped symbol store. Lookups walk the outer
// chain; definitions always land in the receiving scope.
type SymbolTable struct {
	store      map[string]Symbol
	classes    map[string]ClassInfo
	companions map[string]*SymbolTable
	outer      *SymbolTable
	scopeType  ScopeType
}

func NewEmptySymbolTable() *SymbolTable {
	return &SymbolTable{
		store:      make(map[string]Symbol),
		classes:    make(map[string]ClassInfo),
		companions: make(map[string]*SymbolTable),
		scopeType:  ScopeGlobal,
	}
}

func NewEnclosedSymbolTable(outer *SymbolTable, scopeType ScopeType) *SymbolTable {
	st := NewEmptySymbolTable()
	st.outer = outer
	st.scopeType = scopeType
	return st
}

func (s *SymbolTable) Outer() *SymbolTable { return s.outer }

func (s *SymbolTable) IsMemberScope() bool { return s.scopeType == ScopeMember }

func (s *SymbolTable) Define(name string, t typesystem.Type, origin string) {
	s.store[name] = Symbol{Name: name, Type: t, Kind: VariableSymbol, IsStablePath: true, OriginModule: origin}
}

func (s *SymbolTable) DefineType(name string, t typesystem.Type, origin string) {
	s.store[name] = Symbol{Name: name, Type: t, Kind: TypeSymbol, IsStablePath: true, OriginModule: origin}
}

// DefineClass registers a capability class symbol plus its parameter list.
// The class's type, as a symbol, is its constructor eta-expanded over the
// parameter kinds.
func (s *SymbolTable) DefineClass(name string, params []typesystem.TVar, origin string) {
	kinds := make([]typesystem.Kind, 0, len(params)+1)
	for _, p := range params {
		kinds = append(kinds, p.Kind())
	}
	kinds = append(kinds, typesystem.Star)
	con := typesystem.TCon{Name: name, KindVal: typesystem.MakeArrow(kinds...)}
	s.store[name] = Symbol{Name: name, Type: con, Kind: ClassSymbol, IsStablePath: true, OriginModule: origin}
	s.classes[name] = ClassInfo{Name: name, TypeParams: params}
}

// DefineClassAlias registers a transparent proxy for an existing class.
// The alias resolves to the same underlying constructor but keeps its own
// written name.
func (s *SymbolTable) DefineClassAlias(alias, className string, origin string) bool {
	sym, ok := s.Find(className)
	if !ok || sym.Kind != ClassSymbol {
		return false
	}
	underlying, _ := sym.Type.(typesystem.TCon)
	proxy := typesystem.TCon{Name: alias, UnderlyingType: underlying, KindVal: underlying.Kind()}
	s.store[alias] = Symbol{Name: alias, Type: proxy, Kind: ClassSymbol, IsStablePath: sym.IsStablePath, OriginModule: origin}
	return true
}

// DefineGiven registers the placeholder symbol for a synthesized instance:
// capability-granting, method-flagged, body pending.
func (s *SymbolTable) DefineGiven(name string, t typesystem.Type, origin string) {
	s.store[name] = Symbol{
		Name:         name,
		Type:         t,
		Kind:         GivenSymbol,
		IsPending:    true,
		IsMethod:     true,
		IsSynthetic:  true,
		IsStablePath: true,
		OriginModule: origin,
	}
}

// DefineCompanion registers the paired module value for a class and the
// scope holding its members. The companion lives in its own namespace:
// class and companion share the written name, resolution picks by
// position (type vs value).
func (s *SymbolTable) DefineCompanion(className string, members *SymbolTable) {
	s.companions[className] = members
}

// Companion resolves the paired module value's member scope for a class
// name, walking outer scopes.
func (s *SymbolTable) Companion(className string) (*SymbolTable, bool) {
	if members, ok := s.companions[className]; ok {
		return members, true
	}
	if s.outer != nil {
		return s.outer.Companion(className)
	}
	return nil, false
}

// ClassParams returns a class's ordered type parameters, walking outer
// scopes.
func (s *SymbolTable) ClassParams(name string) ([]typesystem.TVar, bool) {
	if info, ok := s.classes[name]; ok {
		return info.TypeParams, true
	}
	if s.outer != nil {
		return s.outer.ClassParams(name)
	}
	return nil, false
}

func (s *SymbolTable) Find(name string) (Symbol, bool) {
	sym, ok := s.store[name]
	if !ok && s.outer != nil {
		return s.outer.Find(name)
	}
	return sym, ok
}

func (s *SymbolTable) IsDefined(name string) bool {
	_, ok := s.Find(name)
	return ok
}

func (s *SymbolTable) IsDefinedLocally(name string) bool {
	_, ok := s.store[name]
	return ok
}

// MarkMaterialized clears the pending flag once an instance body exists.
func (s *SymbolTable) MarkMaterialized(name string) {
	if sym, ok := s.store[name]; ok {
		sym.IsPending = false
		s.store[name] = sym
		return
	}
	if s.outer != nil {
		s.outer.MarkMaterialized(name)
	}
}

func (s *SymbolTable) All() map[string]Symbol {
	return s.store
}

// LocalNames returns the names defined in this scope, sorted for
// deterministic iteration.
func (s *SymbolTable) LocalNames() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
