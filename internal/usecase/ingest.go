package usecase

import (
	"fmt"
	"time"

	"FinTab/internal/domain/models"
	drepo "FinTab/internal/domain/repository"
	"FinTab/internal/repository"
	applogger "FinTab/pkg/logger"
)

// indexFunc inserts one parsed row into the entity index. The row is
// already validated against the table schema; position mapping is fixed
// per recognized table name.
type indexFunc func(ix *repository.MemoryIndex, row models.Row)

// indexers maps recognized table names to their indexing strategy. The
// strategy is chosen once per table header and applied to every data line
// of that table. Tables with any other name are stored without indexing.
var indexers = map[string]indexFunc{
	"tradable": func(ix *repository.MemoryIndex, row models.Row) {
		ix.PutClass(row[0].Text(), row[1].Text())
	},
	"price-over-time": func(ix *repository.MemoryIndex, row models.Row) {
		ix.PutPrice(row[1].Text(), row[0].Int(), row[2].Float())
	},
	"volume-over-time": func(ix *repository.MemoryIndex, row models.Row) {
		ix.PutVolume(row[1].Text(), row[0].Int(), row[2].Float())
	},
	"trades": func(ix *repository.MemoryIndex, row models.Row) {
		ix.AddTrade(row[2].Text(), models.TradeEntry{
			ID:       row[0].Int(),
			Day:      row[1].Int(),
			Quantity: row[3].Int(),
		})
	},
}

// IndexedTable reports whether data lines of the named table feed the
// entity index.
func IndexedTable(name string) bool {
	_, ok := indexers[name]
	return ok
}

// TableLoader rebuilds typed tables and the entity index from tokenized
// input lines.
type TableLoader struct {
	metrics drepo.Metrics
	log     *applogger.Logger
}

// NewTableLoader creates a new TableLoader instance.
func NewTableLoader(metrics drepo.Metrics, log *applogger.Logger) *TableLoader {
	return &TableLoader{metrics: metrics, log: log}
}

// Load consumes every line in one pass: headers declare tables, all other
// lines are data for the most recent table. Store and index state are
// released only on full success; the first malformed line fails the whole
// run with its 1-based line number.
func (l *TableLoader) Load(lines [][]string) (*repository.TableStore, *repository.MemoryIndex, error) {
	start := time.Now()
	store := repository.NewTableStore()
	index := repository.NewMemoryIndex()

	var (
		cur      *models.Table
		indexRow indexFunc
	)

	for i := 0; i < len(lines); i++ {
		fields := lines[i]

		if len(fields) > 0 && fields[0] == models.TableMarker {
			table, err := parseHeader(lines, i)
			if err != nil {
				l.metrics.RecordError("ingest")
				return nil, nil, err
			}
			cur = table
			indexRow = indexers[table.Name()]
			store.Add(table)
			l.log.Debug("table declared",
				applogger.String("table", table.Name()),
				applogger.Int("columns", table.ColumnCount()),
				applogger.Bool("indexed", indexRow != nil),
			)
			i += 2
			continue
		}

		if cur == nil {
			l.metrics.RecordError("ingest")
			return nil, nil, fmt.Errorf("line %d: data line before any table header", i+1)
		}

		row, err := parseRow(cur, fields, i)
		if err != nil {
			l.metrics.RecordError("ingest")
			return nil, nil, err
		}

		cur.Append(row)
		if indexRow != nil {
			indexRow(index, row)
		}
	}

	for _, t := range store.Tables() {
		l.metrics.RecordRowsIngested(t.Name(), t.RowCount())
		l.metrics.RecordTableLoaded(t.Name())
	}
	l.metrics.RecordLatency("load", time.Since(start).Seconds())
	l.log.Info("tables loaded",
		applogger.Int("tables", store.Len()),
		applogger.Duration("took_ms", time.Since(start)),
	)

	return store, index, nil
}

// Events describes every loaded table for downstream publishing.
func (l *TableLoader) Events(store *repository.TableStore) []models.LoadEvent {
	events := make([]models.LoadEvent, 0, store.Len())
	for _, t := range store.Tables() {
		events = append(events, models.LoadEvent{
			Table:   t.Name(),
			Rows:    t.RowCount(),
			Indexed: IndexedTable(t.Name()),
		})
	}
	return events
}

// parseHeader consumes the header block at lines[i]: the marker line with
// the table name, then the column kind line, then the column name line.
func parseHeader(lines [][]string, i int) (*models.Table, error) {
	header := lines[i]
	if len(header) < 2 || header[1] == "" {
		return nil, fmt.Errorf("line %d: table header missing table name", i+1)
	}
	if i+2 >= len(lines) {
		return nil, fmt.Errorf("line %d: table %q header truncated, expected kind and column lines", i+1, header[1])
	}

	kindNames := lines[i+1]
	colNames := lines[i+2]
	if len(kindNames) != len(colNames) {
		return nil, fmt.Errorf("line %d: table %q declares %d kinds but %d column names",
			i+3, header[1], len(kindNames), len(colNames))
	}

	cols := make([]models.Column, len(colNames))
	for j, kindName := range kindNames {
		kind, err := models.ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("line %d: table %q column %d: %w", i+2, header[1], j, err)
		}
		cols[j] = models.Column{Name: colNames[j], Kind: kind}
	}

	return models.NewTable(header[1], cols), nil
}

// parseRow parses one data line against the current table's schema.
func parseRow(t *models.Table, fields []string, i int) (models.Row, error) {
	if len(fields) != t.ColumnCount() {
		return nil, fmt.Errorf("line %d: table %q expects %d fields, got %d",
			i+1, t.Name(), t.ColumnCount(), len(fields))
	}

	row := make(models.Row, len(fields))
	for j, raw := range fields {
		v, err := models.ParseValue(t.ColumnKind(j), raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: table %q column %q: %w", i+1, t.Name(), t.ColumnName(j), err)
		}
		row[j] = v
	}
	return row, nil
}
