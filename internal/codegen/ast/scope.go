package ast

import "strings"

type (
	Scope struct {
		Variables map[string]*Variable
		Parent    *Scope
	}

	Variable struct {
		Name string
	}
)

func NewScope(declaredVariables ...string) *Scope {
	variables := map[string]*Variable{}
	for _, variable := range declaredVariables {
		variables[variable] = &Variable{Name: variable}
	}
	return &Scope{
		Variables: variables,
	}
}

func (s *Scope) NextScope() *Scope {
	scope := NewScope()
	scope.Parent = s
	return scope
}

//DeclareVariable declares root of selector variable in the current scope
func (s *Scope) DeclareVariable(variable string) {
	if index := strings.Index(variable, "."); index != -1 {
		variable = variable[:index]
	}
	if s.Variables[variable] != nil {
		return
	}
	s.Variables[variable] = &Variable{
		Name: variable,
	}
}

//IsDeclared returns true if variable was declared in this or any parent scope, member selectors are always declared
func (s *Scope) IsDeclared(variable string) bool {
	if strings.Contains(variable, ".") {
		return true
	}
	for tmp := s; tmp != nil; tmp = tmp.Parent {
		if _, ok := tmp.Variables[variable]; ok {
			return true
		}
	}
	return false
}
