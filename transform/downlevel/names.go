package downlevel

import "strconv"

// Reserved temporary name prefixes. Implementations downstream of this
// pass must not mint identifiers with these prefixes.
const (
	prefixIter       = "$jscomp$iter$"
	prefixKey        = "$jscomp$key$"
	prefixRestParams = "$jscomp$restParams"
	prefixRestIndex  = "$jscomp$restIndex"
	prefixSpreadArgs = "$jscomp$spread$args$"
	prefixCompProp   = "$jscomp$compprop$"
)

// nameMinter supplies fresh temporary identifiers. A single monotonically
// increasing counter is shared across every rewrite in one pass run, so
// temporaries introduced by distinct rewrites never collide.
type nameMinter struct {
	counter int
}

func (m *nameMinter) next() string {
	m.counter++
	return strconv.Itoa(m.counter)
}

func (m *nameMinter) iterName() string {
	return prefixIter + m.next()
}

func (m *nameMinter) keyName(varName string) string {
	return prefixKey + varName
}

func (m *nameMinter) spreadArgsName() string {
	return prefixSpreadArgs + m.next()
}

func (m *nameMinter) compPropName() string {
	return prefixCompProp + m.next()
}
