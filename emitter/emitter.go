package emitter

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/resxgen/converter"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/logger"
	"github.com/viant/resxgen/resource"
	"time"
)

const debugWriteLine = "System.Diagnostics.Debug.WriteLine"

//Emitter turns catalog owner properties into initialization statements
type Emitter struct {
	registry *converter.Registry
	logger   *logger.Adapter
	counter  *logger.CounterAdapter
}

//Emit emits block for the named owner, label identifies the call site in diagnostic markers
func (e *Emitter) Emit(catalog *resource.Catalog, objectName string, label string) (*Block, error) {
	var owner *resource.Owner
	if catalog != nil {
		owner = catalog.Lookup(objectName)
	}
	if owner == nil {
		return &Block{Owner: objectName}, nil
	}
	return e.EmitOwner(owner, label)
}

//EmitOwner emits owner properties in catalog order
func (e *Emitter) EmitOwner(owner *resource.Owner, label string) (*Block, error) {
	onDone := e.counter.Begin(time.Now())
	block, err := e.emitOwner(owner, label)
	if err != nil {
		onDone(time.Now(), err)
		return nil, err
	}
	onDone(time.Now())
	return block, nil
}

func (e *Emitter) emitOwner(owner *resource.Owner, label string) (*Block, error) {
	block := &Block{Owner: owner.Name}
	for _, entry := range owner.Properties.Items {
		target := ast.NewIdent(ControlVariable + "." + entry.Property)
		outcome, err := e.registry.Convert(entry, target)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to emit %v.%v", owner.Name, entry.Property)
		}
		e.counter.IncrementValue(outcome.Kind.String())
		switch outcome.Kind {
		case converter.KindExpression:
			block.Statements.Append(ast.NewAssign(target, outcome.Expression))
		case converter.KindStatementBlock:
			block.Statements.Append(outcome.Block...)
		case converter.KindUnresolved:
			block.FallbackNeeded = true
			block.Statements.Append(marker(label, entry))
			e.logger.Unresolved(label, owner.Name, entry.Property, entry.Type)
		}
	}
	if block.FallbackNeeded {
		block.Statements.Append(fallback())
	}
	return block, nil
}

func marker(label string, entry *resource.Entry) ast.Statement {
	message := fmt.Sprintf("%v(%v of type %v)", label, entry.Name(), entry.Type)
	return ast.NewStatementExpression(ast.NewCallExpr(nil, debugWriteLine, ast.NewQuotedLiteral(message)))
}

func fallback() ast.Statement {
	return ast.NewStatementExpression(ast.NewCallExpr(ast.NewIdent(ManagerVariable), "ApplyResources", ast.NewIdent(ValueVariable), ast.NewIdent(ObjectNameVariable)))
}

//New creates an emitter
func New(registry *converter.Registry, options ...Option) *Emitter {
	ret := &Emitter{registry: registry}
	for _, opt := range options {
		opt(ret)
	}
	if ret.registry == nil {
		ret.registry = converter.NewRegistry(nil)
	}
	if ret.logger == nil {
		ret.logger = logger.NewLogger(nil)
	}
	if ret.counter == nil {
		ret.counter = logger.NewCounter(nil)
	}
	return ret
}
