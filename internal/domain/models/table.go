package models

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// TableMarker opens a table header block in the wire format.
const TableMarker = "<TABLE>"

// Column describes one table column: display name plus value kind.
type Column struct {
	Name string
	Kind Kind
}

// Row is one record, positionally aligned with the owning table's columns.
type Row []Value

// Table is an append-only collection of rows under a fixed schema. The
// schema never changes after construction and rows are never updated or
// removed, so every value at column i is guaranteed to carry the kind
// declared for column i.
type Table struct {
	name string
	cols []Column
	rows []Row
}

// NewTable creates an empty table. Columns must be well formed (at least
// one, names and kinds already resolved); that is the caller's contract,
// construction itself always succeeds.
func NewTable(name string, cols []Column) *Table {
	return &Table{name: name, cols: append([]Column(nil), cols...)}
}

func (t *Table) Name() string     { return t.name }
func (t *Table) ColumnCount() int { return len(t.cols) }
func (t *Table) RowCount() int    { return len(t.rows) }

// ColumnName returns the name of column i. Panics when i is out of range.
func (t *Table) ColumnName(i int) string {
	if i < 0 || i >= len(t.cols) {
		panic(fmt.Sprintf("models: column %d out of range in %q (%d columns)", i, t.name, len(t.cols)))
	}
	return t.cols[i].Name
}

// ColumnKind returns the kind of column i. Panics when i is out of range.
func (t *Table) ColumnKind(i int) Kind {
	if i < 0 || i >= len(t.cols) {
		panic(fmt.Sprintf("models: column %d out of range in %q (%d columns)", i, t.name, len(t.cols)))
	}
	return t.cols[i].Kind
}

// Append stores one row. The row must match the schema exactly; a wrong
// arity or a wrong kind at any position is a caller bug and panics.
func (t *Table) Append(row Row) {
	if len(row) != len(t.cols) {
		panic(fmt.Sprintf("models: append %d values to %q (%d columns)", len(row), t.name, len(t.cols)))
	}
	for i, v := range row {
		if v.Kind() != t.cols[i].Kind {
			panic(fmt.Sprintf("models: column %q of %q holds %s, got %s", t.cols[i].Name, t.name, t.cols[i].Kind, v.Kind()))
		}
	}
	t.rows = append(t.rows, row)
}

// Rows returns a restartable in-order view over the stored rows. The
// sequence reads the table's own storage; nothing is copied.
func (t *Table) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range t.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Render writes the table in its wire format: the marker line with the
// table name, the comma-joined column kinds, the comma-joined column
// names, then one comma-joined line per row. Values containing commas are
// not quoted; the format has no escaping.
func (t *Table) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s,%s\n", TableMarker, t.name); err != nil {
		return err
	}
	kinds := make([]string, len(t.cols))
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		kinds[i] = c.Kind.String()
		names[i] = c.Name
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(kinds, ","), strings.Join(names, ",")); err != nil {
		return err
	}
	fields := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, v := range row {
			fields[i] = v.String()
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}
