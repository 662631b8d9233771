package models

import (
	"strings"
	"testing"
)

func countsColumns() []Column {
	return []Column{
		{Name: "asset-class", Kind: KindString},
		{Name: "count", Kind: KindInt},
	}
}

func TestTableAppendAndRender(t *testing.T) {
	tbl := NewTable("asset-class_counts", countsColumns())
	tbl.Append(Row{StringValue("bond"), IntValue(2)})
	tbl.Append(Row{StringValue("stock"), IntValue(3)})

	var sb strings.Builder
	if err := tbl.Render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<TABLE>,asset-class_counts\n" +
		"STRING,INT\n" +
		"asset-class,count\n" +
		"bond,2\n" +
		"stock,3\n"
	if sb.String() != want {
		t.Fatalf("unexpected render:\n%s", sb.String())
	}
}

func TestTableRenderEmpty(t *testing.T) {
	tbl := NewTable("empty", countsColumns())
	var sb strings.Builder
	if err := tbl.Render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := sb.String(); got != "<TABLE>,empty\nSTRING,INT\nasset-class,count\n" {
		t.Fatalf("unexpected render:\n%s", got)
	}
}

func TestTableAppendArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewTable("t", countsColumns()).Append(Row{StringValue("bond")})
}

func TestTableAppendKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewTable("t", countsColumns()).Append(Row{IntValue(1), IntValue(2)})
}

func TestTableColumnAccessOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = NewTable("t", countsColumns()).ColumnKind(2)
}

func TestTableRowsIsRestartable(t *testing.T) {
	tbl := NewTable("t", countsColumns())
	tbl.Append(Row{StringValue("a"), IntValue(1)})
	tbl.Append(Row{StringValue("b"), IntValue(2)})

	for pass := 0; pass < 2; pass++ {
		var names []string
		for row := range tbl.Rows() {
			names = append(names, row[0].Text())
		}
		if len(names) != 2 || names[0] != "a" || names[1] != "b" {
			t.Fatalf("pass %d: unexpected rows %v", pass, names)
		}
	}
}
