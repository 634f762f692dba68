// SPDX-License-Identifier: MIT

// Package table - textual interchange format.
//
// Two spellings of the same row-major content:
//   - String: {{e00,e01},{e10,e11}}   (nested braces, no trailing comma)
//   - Dump:   [e00,e01;e10,e11];       (matrix literal, one trailing semicolon)
//
// Parse accepts either spelling, tolerates whitespace around tokens, and rejects
// ragged rows.

package table

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpenBrace    = "{"
	_fmtCloseBrace   = "}"
	_fmtOpenBracket  = "["
	_fmtCloseBracket = "]"
	_fmtTerminator   = ";"
	_fmtSep          = ","
	_fmtRowSep       = ";"
)

// Compile-time check for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table[float64])(nil)

// formatValue renders one element: integers in base 10, floats in the shortest
// representation that round-trips.
func formatValue[V Value](v V) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return fmt.Sprint(v)
}

// String renders the table as {{e00,e01,...},{e10,...},...}. An empty table is {}.
// Complexity: O(r*c).
func (t *Table[V]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpenBrace)
	var i, j, base int
	for i = 0; i < t.r; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpenBrace)
		base = i * t.c
		for j = 0; j < t.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatValue(t.data[base+j]))
		}
		b.WriteString(_fmtCloseBrace)
	}
	b.WriteString(_fmtCloseBrace)

	return b.String()
}

// Dump renders the table as a one-line matrix literal [e00,e01;e10,e11]; with
// semicolon-separated rows and a single trailing semicolon. An empty table is [];.
func (t *Table[V]) Dump() string {
	var b strings.Builder
	b.WriteString(_fmtOpenBracket)
	var i, j, base int
	for i = 0; i < t.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * t.c
		for j = 0; j < t.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatValue(t.data[base+j]))
		}
	}
	b.WriteString(_fmtCloseBracket)
	b.WriteString(_fmtTerminator)

	return b.String()
}

// Parse reads either textual form produced by String or Dump.
// MAIN DESCRIPTION:
//   - "{{1,2},{3,4}}" and "[1,2;3,4];" both yield the same 2×2 table.
//
// Implementation:
//   - Stage 1: dispatch on the leading delimiter.
//   - Stage 2: split into rows of raw fields.
//   - Stage 3: check every row has the first row's length; convert fields to V.
//
// Errors:
//   - ErrSyntax for malformed delimiters or unparsable numbers.
//   - ErrDimensionMismatch for ragged rows.
//
// Notes:
//   - Integer element types parse fields with strconv.ParseInt, so "1.5" is a
//     syntax error for Table[int].
func Parse[V Value](s string) (*Table[V], error) {
	s = strings.TrimSpace(s)
	var (
		rows [][]string
		err  error
	)
	switch {
	case strings.HasPrefix(s, _fmtOpenBrace):
		rows, err = splitBraces(s)
	case strings.HasPrefix(s, _fmtOpenBracket):
		rows, err = splitBrackets(s)
	default:
		err = ErrSyntax
	}
	if err != nil {
		return nil, tableErrorf(ctxParse, err)
	}
	if len(rows) == 0 {
		return &Table[V]{}, nil
	}

	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, cellErrorf(ctxParse, i, len(rows[i]), ErrDimensionMismatch)
		}
	}
	t, err := New[V](len(rows), cols)
	if err != nil {
		return nil, tableErrorf(ctxParse, err)
	}
	var v V
	for i, row := range rows {
		for j, field := range row {
			if v, err = parseValue[V](field); err != nil {
				return nil, cellErrorf(ctxParse, i, j, err)
			}
			t.data[i*cols+j] = v
		}
	}

	return t, nil
}

// splitBraces splits "{{a,b},{c,d}}" into [[a b] [c d]].
func splitBraces(s string) ([][]string, error) {
	if !strings.HasSuffix(s, _fmtCloseBrace) || len(s) < 2 {
		return nil, ErrSyntax
	}
	rest := strings.TrimSpace(s[1 : len(s)-1])
	var rows [][]string
	for rest != "" {
		if !strings.HasPrefix(rest, _fmtOpenBrace) {
			return nil, ErrSyntax
		}
		end := strings.Index(rest, _fmtCloseBrace)
		if end < 0 {
			return nil, ErrSyntax
		}
		rows = append(rows, splitFields(rest[1:end]))
		rest = strings.TrimSpace(rest[end+1:])
		if rest == "" {
			break
		}
		if !strings.HasPrefix(rest, _fmtSep) {
			return nil, ErrSyntax
		}
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return nil, ErrSyntax // trailing comma after the last row
		}
	}

	return rows, nil
}

// splitBrackets splits "[a,b;c,d];" (trailing semicolon optional) into [[a b] [c d]].
func splitBrackets(s string) ([][]string, error) {
	s = strings.TrimSpace(strings.TrimSuffix(s, _fmtTerminator))
	if !strings.HasSuffix(s, _fmtCloseBracket) || len(s) < 2 {
		return nil, ErrSyntax
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, _fmtRowSep)
	rows := make([][]string, len(parts))
	for i, p := range parts {
		rows[i] = splitFields(p)
	}

	return rows, nil
}

// splitFields splits a comma-separated row; a blank row has no fields.
func splitFields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	fields := strings.Split(s, _fmtSep)
	for k := range fields {
		fields[k] = strings.TrimSpace(fields[k])
	}

	return fields
}

// isIntegral reports whether V is an integer type.
func isIntegral[V Value]() bool {
	half := 0.5
	return V(half) == 0
}

// isUnsigned reports whether V is an unsigned integer type.
func isUnsigned[V Value]() bool {
	var zero V
	return zero-1 > zero
}

// parseValue converts one field to V. Integer fields that do not fit V are
// rejected rather than wrapped.
func parseValue[V Value](field string) (V, error) {
	if isUnsigned[V]() {
		u, err := strconv.ParseUint(field, 10, 64)
		if err != nil || uint64(V(u)) != u {
			return 0, fmt.Errorf("field %q: %w", field, ErrSyntax)
		}
		return V(u), nil
	}
	if isIntegral[V]() {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil || int64(V(n)) != n {
			return 0, fmt.Errorf("field %q: %w", field, ErrSyntax)
		}
		return V(n), nil
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, ErrSyntax)
	}

	return V(f), nil
}
