package converter

import (
	"github.com/pkg/errors"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/locale"
	"github.com/viant/resxgen/resource"
	"sort"
	"sync"
)

//Registry dispatches resource entries to converters by type tag
type Registry struct {
	mux        sync.RWMutex
	culture    *locale.Culture
	converters map[string]Converter
}

//Register registers or replaces converter for the tag
func (r *Registry) Register(tag string, converter Converter) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.converters[tag] = converter
}

//Lookup returns converter registered for the tag
func (r *Registry) Lookup(tag string) (Converter, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	converter, ok := r.converters[tag]
	return converter, ok
}

//Tags returns sorted registered tags
func (r *Registry) Tags() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	result := make([]string, 0, len(r.converters))
	for tag := range r.converters {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

//Culture returns registry culture
func (r *Registry) Culture() *locale.Culture {
	return r.culture
}

//Convert converts entry into an outcome for the target property expression
func (r *Registry) Convert(entry *resource.Entry, target ast.Expression) (*Outcome, error) {
	if designerProperties[entry.Property] {
		return Ignored(), nil
	}
	if entry.Property == propertyLocalizable && (entry.Type == booleanMscorlib || entry.Type == booleanCoreLib) {
		return Ignored(), nil
	}
	if !entry.HasType() {
		if entry.Property == propertyText {
			return NewExpression(ast.NewCallExpr(ast.NewIdent(managerVariable), "GetString", ast.NewQuotedLiteral(entry.Name()))), nil
		}
		return Unresolved(), nil
	}
	converter, ok := r.Lookup(entry.Type)
	if !ok {
		return Unresolved(), nil
	}
	outcome, err := converter.Convert(entry, target, r.culture)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert %v of type %v", entry.Name(), entry.Type)
	}
	return outcome, nil
}

//NewRegistry creates registry with built-in converters
func NewRegistry(culture *locale.Culture) *Registry {
	if culture == nil {
		culture = locale.Invariant()
	}
	return &Registry{culture: culture, converters: builtInConverters()}
}
