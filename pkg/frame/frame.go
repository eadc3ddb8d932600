// Package frame provides a small row-oriented table used to assemble
// tabular reports: ordered columns, nullable cells, joins and pivots.
package frame

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// Column describes one column of a frame.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Row holds one record keyed by column name. A nil cell is a null.
type Row map[string]any

// Frame is an ordered collection of rows sharing a column schema.
type Frame struct {
	Name    string
	Columns []Column
	Rows    []Row
	Index   []string
}

// New returns an empty frame with the given schema.
func New(name string, columns ...Column) *Frame {
	return &Frame{Name: name, Columns: columns}
}

// AppendRow adds a record, keeping only cells named in the schema.
// Cells absent from the record become nil.
func (f *Frame) AppendRow(row Row) {
	normalized := make(Row, len(f.Columns))
	for _, col := range f.Columns {
		normalized[col.Name] = row[col.Name]
	}
	f.Rows = append(f.Rows, normalized)
}

// SetIndex marks existing columns as the frame's index.
func (f *Frame) SetIndex(names ...string) error {
	for _, name := range names {
		if !f.hasColumn(name) {
			return fmt.Errorf("set index: unknown column %q", name)
		}
	}
	f.Index = append([]string(nil), names...)
	return nil
}

// Select returns a new frame restricted to the named columns, in the
// given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		col, ok := f.column(name)
		if !ok {
			return nil, fmt.Errorf("select: unknown column %q", name)
		}
		columns = append(columns, col)
	}
	out := New(f.Name, columns...)
	for _, row := range f.Rows {
		out.AppendRow(row)
	}
	return out, nil
}

// Rename renames columns in place according to the mapping. Names not
// present in the mapping are left alone.
func (f *Frame) Rename(mapping map[string]string) {
	for i, col := range f.Columns {
		if to, ok := mapping[col.Name]; ok {
			f.Columns[i].Name = to
			for _, row := range f.Rows {
				row[to] = row[col.Name]
				delete(row, col.Name)
			}
		}
	}
	for i, name := range f.Index {
		if to, ok := mapping[name]; ok {
			f.Index[i] = to
		}
	}
}

// SortBy stably sorts rows ascending by the named columns. Nil cells
// order after all values.
func (f *Frame) SortBy(names ...string) error {
	for _, name := range names {
		if !f.hasColumn(name) {
			return fmt.Errorf("sort: unknown column %q", name)
		}
	}
	sort.SliceStable(f.Rows, func(i, j int) bool {
		for _, name := range names {
			if c := compareCells(f.Rows[i][name], f.Rows[j][name]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return nil
}

// AddColumn appends a column whose cells are computed per row.
func (f *Frame) AddColumn(name string, compute func(Row) any) {
	f.Columns = append(f.Columns, Column{Name: name})
	for _, row := range f.Rows {
		row[name] = compute(row)
	}
}

// LeftJoin joins every left row against right rows whose rightKey cell
// equals the left row's leftKey cell. Left rows without a match appear
// once with nil right cells; left rows with several matches appear once
// per match. Right columns whose names collide with left columns are
// renamed with the suffix; the right key column is dropped.
func (f *Frame) LeftJoin(right *Frame, leftKey, rightKey, suffix string) (*Frame, error) {
	if !f.hasColumn(leftKey) {
		return nil, fmt.Errorf("left join: unknown left key %q", leftKey)
	}
	if !right.hasColumn(rightKey) {
		return nil, fmt.Errorf("left join: unknown right key %q", rightKey)
	}

	type mapped struct {
		from string
		to   string
	}
	var carried []mapped
	columns := append([]Column(nil), f.Columns...)
	for _, col := range right.Columns {
		if col.Name == rightKey {
			continue
		}
		name := col.Name
		if f.hasColumn(name) {
			name += suffix
		}
		columns = append(columns, Column{Name: name, Type: col.Type})
		carried = append(carried, mapped{from: col.Name, to: name})
	}

	byKey := make(map[string][]Row, len(right.Rows))
	for _, row := range right.Rows {
		k := cellKey(row[rightKey])
		byKey[k] = append(byKey[k], row)
	}

	out := New(f.Name, columns...)
	out.Index = append([]string(nil), f.Index...)
	for _, left := range f.Rows {
		matches := byKey[cellKey(left[leftKey])]
		if len(matches) == 0 {
			out.AppendRow(left)
			continue
		}
		for _, match := range matches {
			row := make(Row, len(columns))
			for k, v := range left {
				row[k] = v
			}
			for _, m := range carried {
				row[m.to] = match[m.from]
			}
			out.AppendRow(row)
		}
	}
	return out, nil
}

// PivotMean reshapes the frame: one output row per distinct index
// tuple, one output column per distinct cell of the columns column
// (lexicographic order), cells holding the arithmetic mean of the
// values column over matching rows. Combinations without a value are
// nil.
func (f *Frame) PivotMean(index []string, columns, values string) (*Frame, error) {
	for _, name := range append(append([]string(nil), index...), columns, values) {
		if !f.hasColumn(name) {
			return nil, fmt.Errorf("pivot: unknown column %q", name)
		}
	}

	type bucket struct {
		sum   float64
		count int
	}
	type group struct {
		cells Row
		means map[string]*bucket
	}

	pivotSet := map[string]bool{}
	groups := map[string]*group{}
	var order []string

	for _, row := range f.Rows {
		colCell := row[columns]
		if colCell == nil {
			continue
		}
		pivot := formatValue(colCell)
		pivotSet[pivot] = true

		key := make([]string, len(index))
		cells := make(Row, len(index))
		for i, name := range index {
			key[i] = cellKey(row[name])
			cells[name] = row[name]
		}
		id := fmt.Sprint(key)
		g, ok := groups[id]
		if !ok {
			g = &group{cells: cells, means: map[string]*bucket{}}
			groups[id] = g
			order = append(order, id)
		}

		v, ok := asFloat(row[values])
		if !ok {
			continue
		}
		b := g.means[pivot]
		if b == nil {
			b = &bucket{}
			g.means[pivot] = b
		}
		b.sum += v
		b.count++
	}

	pivots := make([]string, 0, len(pivotSet))
	for p := range pivotSet {
		pivots = append(pivots, p)
	}
	sort.Strings(pivots)

	cols := make([]Column, 0, len(index)+len(pivots))
	for _, name := range index {
		col, _ := f.column(name)
		cols = append(cols, col)
	}
	for _, p := range pivots {
		cols = append(cols, Column{Name: p, Type: "float"})
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		for _, name := range index {
			if c := compareCells(a.cells[name], b.cells[name]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	out := New(f.Name, cols...)
	out.Index = append([]string(nil), index...)
	for _, id := range order {
		g := groups[id]
		row := make(Row, len(cols))
		for name, v := range g.cells {
			row[name] = v
		}
		for _, p := range pivots {
			if b := g.means[p]; b != nil && b.count > 0 {
				row[p] = b.sum / float64(b.count)
			}
		}
		out.AppendRow(row)
	}
	return out, nil
}

// WriteCSV renders the frame with a header row. Nil cells render empty.
func (f *Frame) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	headers := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		headers[i] = col.Name
	}
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range f.Rows {
		record := make([]string, len(f.Columns))
		for i, col := range f.Columns {
			record[i] = formatValue(row[col.Name])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// MarshalJSON renders the frame as {name, columns, rows}.
func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Columns []Column `json:"columns"`
		Rows    []Row    `json:"rows"`
	}{Name: f.Name, Columns: f.Columns, Rows: f.Rows})
}

func (f *Frame) hasColumn(name string) bool {
	_, ok := f.column(name)
	return ok
}

func (f *Frame) column(name string) (Column, bool) {
	for _, col := range f.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// cellKey normalizes a cell for equality grouping so that, for example,
// int(26) and float64(26) join against each other.
func cellKey(v any) string {
	if f, ok := asFloat(v); ok {
		return fmt.Sprintf("f%v", f)
	}
	return "s" + formatValue(v)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func compareCells(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	fa, aok := asFloat(a)
	fb, bok := asFloat(b)
	if aok && bok {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	sa, sb := formatValue(a), formatValue(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	case float32:
		return fmt.Sprintf("%g", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}
