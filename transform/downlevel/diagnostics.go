package downlevel

import (
	"fmt"

	"github.com/t14raptor/go-fast/ast"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ID names one of the fixed diagnostics this pass can emit.
type ID string

const (
	CannotConvert               ID = "CANNOT_CONVERT"
	CannotConvertYet            ID = "CANNOT_CONVERT_YET"
	DynamicExtendsType          ID = "DYNAMIC_EXTENDS_TYPE"
	ClassReassignment           ID = "CLASS_REASSIGNMENT"
	ConflictingGetterSetterType ID = "CONFLICTING_GETTER_SETTER_TYPE"
	BadRestParameterAnnotation  ID = "BAD_REST_PARAMETER_ANNOTATION"
)

var severities = map[ID]Severity{
	CannotConvert:               SeverityError,
	CannotConvertYet:            SeverityError,
	DynamicExtendsType:          SeverityError,
	ClassReassignment:           SeverityError,
	ConflictingGetterSetterType: SeverityError,
	BadRestParameterAnnotation:  SeverityWarning,
}

var formats = map[ID]string{
	CannotConvert:               "This code cannot be converted from ES6. %s",
	CannotConvertYet:            "ES6 transpilation of '%s' is not yet implemented.",
	DynamicExtendsType:          "The class in an extends clause must be a qualified name.",
	ClassReassignment:           "Class names defined inside a function cannot be reassigned.",
	ConflictingGetterSetterType: "The types of the getter and setter for property '%s' do not match.",
	BadRestParameterAnnotation:  `Missing "..." in type annotation for rest parameter.`,
}

// Diagnostic is a single error or warning attached to a node.
type Diagnostic struct {
	ID       ID
	Severity Severity
	Message  string
	Pos      ast.Idx
}

// Diagnostics accumulates the diagnostics reported during a single run of
// the pass. Nothing in this pass aborts on a diagnostic; each rewriter
// either mutates the tree or records one and leaves the node alone.
type Diagnostics struct {
	List []Diagnostic
}

func (d *Diagnostics) report(id ID, pos ast.Idx, args ...any) {
	format := formats[id]
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	d.List = append(d.List, Diagnostic{ID: id, Severity: severities[id], Message: msg, Pos: pos})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, diag := range d.List {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}
