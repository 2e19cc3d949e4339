package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span labels a unit of work; it travels in the context and is attached
// to every record logged under it.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
