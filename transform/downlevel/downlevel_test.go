package downlevel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-fast/generator"
	"github.com/t14raptor/go-fast/parser"
)

func lower(t *testing.T, src string) (string, *Result) {
	t.Helper()
	prog, err := parser.ParseFile(src)
	require.NoError(t, err)
	res := Run(prog, Options{}, nil)
	return generator.Generate(prog), res
}

func TestRestParameter(t *testing.T) {
	out, res := lower(t, `function f(a, ...rest) { return rest.length + a; }`)
	assert.Contains(t, out, prefixRestParams)
	assert.Contains(t, out, prefixRestIndex)
	assert.Contains(t, out, "arguments.length")
	assert.NotContains(t, out, "...rest")
	assert.False(t, res.NeedsRuntime)

	// The rest parameter stays in the signature (spec.md §4.5 step 1) and the
	// original body is re-scoped under a `let` binding of the same name
	// (spec.md §8 concrete scenario 2), not flattened into a function-scoped var.
	assert.Contains(t, out, "function f(a, rest)")
	assert.Contains(t, out, "let rest = "+prefixRestParams)
	assert.NotContains(t, out, "var rest")
}

func TestRestParameterOnArrowWithExpressionBody(t *testing.T) {
	out, _ := lower(t, `var f = (...rest) => rest.length;`)
	assert.Contains(t, out, "(rest) =>")
	assert.Contains(t, out, "let rest = "+prefixRestParams)
	assert.Contains(t, out, "return rest.length")
	assert.NotContains(t, out, "...rest")
}

func TestForOfLowering(t *testing.T) {
	out, res := lower(t, `for (let x of items) { console.log(x); }`)
	assert.Contains(t, out, "$jscomp.makeIterator")
	assert.Contains(t, out, "$jscomp$iter$")
	assert.Contains(t, out, "$jscomp$key$x")
	assert.NotContains(t, out, " of ")
	assert.True(t, res.NeedsRuntime)
}

func TestSpreadArrayLiteral(t *testing.T) {
	out, _ := lower(t, `var a = [1, ...mid, 2];`)
	assert.Contains(t, out, ".concat(")
	assert.NotContains(t, out, "...mid")
}

func TestSpreadCallHoistsReceiver(t *testing.T) {
	out, _ := lower(t, `f(g()).m(...args);`)
	assert.Contains(t, out, prefixSpreadArgs)
	assert.Contains(t, out, ".apply(")
}

func TestSpreadNewUsesBindApply(t *testing.T) {
	out, _ := lower(t, `var inst = new Ctor(...args);`)
	assert.Contains(t, out, "Function.prototype.bind.apply")
}

func TestComputedPropertyHoisting(t *testing.T) {
	out, _ := lower(t, `var o = {[k]: v, a: 1};`)
	assert.Contains(t, out, prefixCompProp)
	assert.NotContains(t, out, "[k]")
}

func TestShorthandMethodAndProperty(t *testing.T) {
	out, _ := lower(t, `var o = {x, m() { return x; }};`)
	assert.Contains(t, out, "x: x")
	assert.Contains(t, out, "m: function")
}

func TestClassWithInheritance(t *testing.T) {
	out, res := lower(t, `
class Base {
  greet() { return "hi"; }
}
class Derived extends Base {
  constructor(name) {
    super();
    this.name = name;
  }
  greet() { return super.greet() + " " + this.name; }
}
`)
	assert.Contains(t, out, "$jscomp.inherits(Derived, Base)")
	assert.Contains(t, out, "Derived.prototype.greet = function")
	assert.Contains(t, out, "Base.prototype.greet = function")
	assert.True(t, res.NeedsRuntime)
	assert.NotContains(t, out, "class ")
}

func TestClassWithFieldsAndStaticMembers(t *testing.T) {
	out, _ := lower(t, `
class Counter {
  count = 0;
  static limit = 10;
  increment() { this.count++; }
  static make() { return new Counter(); }
}
`)
	assert.Contains(t, out, "this.count = 0")
	assert.Contains(t, out, "Counter.limit = 10")
	assert.Contains(t, out, "Counter.make = function")
}

func TestClassWithAccessors(t *testing.T) {
	out, _ := lower(t, `
class Box {
  get value() { return this._v; }
  set value(v) { this._v = v; }
}
`)
	assert.Contains(t, out, "Object.defineProperties(Box.prototype")
	assert.Contains(t, out, "get:")
	assert.Contains(t, out, "set:")
}

func TestDiagnosticOnDynamicExtends(t *testing.T) {
	_, res := lower(t, `class C extends getBase() {}`)
	found := false
	for _, d := range res.Diagnostics.List {
		if d.ID == DynamicExtendsType {
			found = true
		}
	}
	assert.True(t, found)
}

func diagIDs(res *Result) []ID {
	ids := make([]ID, len(res.Diagnostics.List))
	for i, d := range res.Diagnostics.List {
		ids[i] = d.ID
	}
	return ids
}

func TestComputedAccessorInObjectLiteralIsDiagnosedNotCorrupted(t *testing.T) {
	out, res := lower(t, `var o = {[k]: v, get [k2]() { return 1; }};`)
	assert.Contains(t, diagIDs(res), CannotConvertYet)
	assert.Contains(t, out, "[k2]")
	assert.NotContains(t, out, prefixCompProp)
}

func TestComputedAccessorInClassIsDiagnosedNotDropped(t *testing.T) {
	out, res := lower(t, `class C { get [k]() { return 1; } }`)
	assert.Contains(t, diagIDs(res), CannotConvert)
	assert.Contains(t, out, "class C")
	assert.NotContains(t, out, "Object.defineProperties")
}

func TestClassLiteralOutsideRecognizedShapeIsDiagnosed(t *testing.T) {
	_, res := lower(t, `f(class { greet() { return "hi"; } });`)
	assert.Contains(t, diagIDs(res), CannotConvert)
}

func TestES3RejectsGetterSetter(t *testing.T) {
	prog, err := parser.ParseFile(`var o = { get x() { return 1; } };`)
	require.NoError(t, err)
	res := Run(prog, Options{LanguageOut: ES3}, nil)
	assert.Contains(t, diagIDs(res), CannotConvert)
}

func TestClassReassignmentInsideFunctionIsDiagnosed(t *testing.T) {
	_, res := lower(t, `
function make() {
  class Widget {}
  Widget = something;
  return Widget;
}
`)
	assert.Contains(t, diagIDs(res), ClassReassignment)
}

func TestClassAssignmentAtTopLevelIsNotReassignment(t *testing.T) {
	out, res := lower(t, `Widget = class { greet() { return "hi"; } };`)
	assert.NotContains(t, diagIDs(res), ClassReassignment)
	assert.Contains(t, out, "Widget.prototype.greet")
}

func TestQualifiedNameClassAssignmentIsLowered(t *testing.T) {
	out, res := lower(t, `ns.Widget = class { greet() { return "hi"; } };`)
	assert.Empty(t, res.Diagnostics.List)
	assert.Contains(t, out, "ns.Widget = function")
	assert.Contains(t, out, "ns.Widget.prototype.greet")
	assert.NotContains(t, out, "class ")
}

func TestClassDeclarationLowersToLetBinding(t *testing.T) {
	out, _ := lower(t, `class Widget { greet() { return "hi"; } }`)
	assert.Contains(t, out, "let Widget = function")
	assert.NotContains(t, out, "var Widget")
}

func TestClassVarInitializerKeepsDeclarationToken(t *testing.T) {
	out, _ := lower(t, `const Widget = class { greet() { return "hi"; } };`)
	assert.Contains(t, out, "const Widget = function")
	assert.NotContains(t, out, "var Widget")
	assert.NotContains(t, out, "let Widget")
}

func TestCodeChangedReportedAndIdempotent(t *testing.T) {
	out, res := lower(t, `for (let x of items) { console.log(x); }`)
	assert.True(t, res.CodeChanged)

	prog, err := parser.ParseFile(out)
	require.NoError(t, err)
	res2 := Run(prog, Options{}, nil)
	assert.False(t, res2.CodeChanged)
}

func TestNoRewriteLeavesPlainCodeUntouched(t *testing.T) {
	out, res := lower(t, `var x = 1 + 2; function f(a, b) { return a + b; }`)
	assert.Contains(t, out, "var x = 1 + 2")
	assert.False(t, res.NeedsRuntime)
	assert.False(t, res.CodeChanged)
	assert.Empty(t, res.Diagnostics.List)
}
