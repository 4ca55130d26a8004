// Run `golangci-lint cache clean` after modifying this file.

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func implicitNow(m dsl.Matcher) {
	m.Match(`time.Now()`).
		Where(m.File().PkgPath.Matches(`humantime/parser`)).
		Report(`extraction code must use the injected reference time, not time.Now; only the zero-now fallback in Parse may call it`)
	m.Match(`time.LoadLocation($_)`).
		Report(`IANA zone resolution is out of scope, offsets are fixed whole hours; use time.FixedZone`)
}

func bareErrors(m dsl.Matcher) {
	m.Match(`errors.New($_)`, `fmt.Errorf($*_)`).
		Where(!m.File().PkgPath.Matches(`humantime/oops`)).
		Report(`construct errors through oops so they carry stack traces`)
}
