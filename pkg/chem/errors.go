package chem

import (
	"fmt"
	"strings"
)

// InvalidArgumentError reports malformed caller input: a bad degree, charge,
// category, radius kind, orbital, or method name. Missing stored data is
// never an InvalidArgumentError; it propagates as a nil value instead.
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func invalidArgf(param, format string, args ...any) error {
	return InvalidArgumentError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// UnknownScaleError reports an electronegativity scale name outside the
// fixed registry. The message enumerates every valid name.
type UnknownScaleError struct {
	Scale Scale
}

func (e UnknownScaleError) Error() string {
	names := make([]string, 0, len(scaleRegistry))
	for _, s := range Scales() {
		names = append(names, string(s))
	}
	return fmt.Sprintf("scale %q not found, available scales are: %s", string(e.Scale), strings.Join(names, ", "))
}

// UnknownTableError reports a reference-table name outside the fixed
// whitelist. The message enumerates every valid name.
type UnknownTableError struct {
	Table Table
}

func (e UnknownTableError) Error() string {
	names := make([]string, 0, len(tableSchemas))
	for _, t := range TableNames() {
		names = append(names, string(t))
	}
	return fmt.Sprintf("table %q not found, available tables are: %s", string(e.Table), strings.Join(names, ", "))
}

// NotFoundError reports a lookup miss for a stored record, such as an
// isotope with an unknown mass number or an element outside the corpus.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}
