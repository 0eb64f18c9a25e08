package sqlite

import (
	"context"
)

// dependencyPairs выдает пары (earlier, later): later зависит от earlier, если
// трогает ту же запись, которую earlier меняет не в режиме Sync*, или ссылается
// на запись, которую earlier создает или удаляет
const dependencyPairs = `
	WITH deps(earlier, later) AS (
		SELECT a.requestnr, b.requestnr
		FROM records a
		JOIN records b
			ON a.infoareaid = b.infoareaid
			AND a.recordid = b.recordid
			AND a.requestnr < b.requestnr
		WHERE a.mode NOT LIKE 'Sync%'
		UNION
		SELECT a.requestnr, l.requestnr
		FROM records a
		JOIN recordlinks l
			ON l.infoareaid = a.infoareaid
			AND l.linkrecordid = a.recordid
			AND a.requestnr < l.requestnr
		WHERE a.mode IN ('New', 'Delete')
	)
`

// DependsOn returns the pending requests that must complete before request nr, ascending
func (t *Tx) DependsOn(ctx context.Context, nr int64) ([]int64, error) {
	return t.queryNumbers(ctx,
		dependencyPairs+"SELECT DISTINCT earlier FROM deps WHERE later = ? ORDER BY earlier", nr)
}

// Dependents returns the pending requests that directly depend on request nr, ascending
func (t *Tx) Dependents(ctx context.Context, nr int64) ([]int64, error) {
	return t.queryNumbers(ctx,
		dependencyPairs+"SELECT DISTINCT later FROM deps WHERE earlier = ? ORDER BY later", nr)
}
