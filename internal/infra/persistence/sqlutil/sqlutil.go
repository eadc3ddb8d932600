// Package sqlutil holds the database/sql plumbing shared by the SQL-backed
// corpus drivers: schema DDL, full-table hydration into a refdata.Dataset,
// and the seeding write path. Table layouts come from the reference-table
// schemas, so drivers never declare columns of their own.
package sqlutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"periodica/internal/refdata"
	"periodica/pkg/chem"
)

// Placeholder renders the 1-based i-th bind parameter for a dialect.
type Placeholder func(i int) string

// Question is the sqlite style placeholder.
func Question(int) string { return "?" }

// Dollar is the postgres style placeholder.
func Dollar(i int) string { return fmt.Sprintf("$%d", i) }

func columnType(kind chem.ColumnKind) string {
	switch kind {
	case chem.KindInt:
		return "INTEGER"
	case chem.KindFloat:
		return "DOUBLE PRECISION"
	case chem.KindBool:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// quoted identifiers throughout: several corpus columns (references, n, s)
// collide with SQL keywords.
func quote(name string) string { return `"` + name + `"` }

// TableDDL returns the CREATE TABLE statement for one reference table.
func TableDDL(table chem.Table) (string, error) {
	schema, err := chem.TableSchema(table)
	if err != nil {
		return "", err
	}
	cols := make([]string, len(schema))
	for i, col := range schema {
		cols[i] = quote(col.Name) + " " + columnType(col.Kind)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(string(table)), strings.Join(cols, ", ")), nil
}

// EnsureSchema creates every reference table that does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range chem.TableNames() {
		ddl, err := TableDDL(table)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create %s: %w", table, err)
		}
	}
	return nil
}

// Empty reports whether the corpus has been seeded, keyed off the elements
// table.
func Empty(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "elements"`)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("count elements: %w", err)
	}
	return count == 0, nil
}

// LoadDataset hydrates all twelve reference tables into a flat dataset.
// The caller validates and links the result.
func LoadDataset(ctx context.Context, db *sql.DB) (*refdata.Dataset, error) {
	var d refdata.Dataset
	for _, table := range chem.TableNames() {
		if err := loadTable(ctx, db, table, &d); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func loadTable(ctx context.Context, db *sql.DB, table chem.Table, d *refdata.Dataset) error {
	schema, err := chem.TableSchema(table)
	if err != nil {
		return err
	}
	names := make([]string, len(schema))
	for i, col := range schema {
		names[i] = quote(col.Name)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quote(string(table)))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		targets := make([]any, len(schema))
		for i, col := range schema {
			switch col.Kind {
			case chem.KindInt:
				targets[i] = &sql.NullInt64{}
			case chem.KindFloat:
				targets[i] = &sql.NullFloat64{}
			case chem.KindBool:
				targets[i] = &sql.NullBool{}
			default:
				targets[i] = &sql.NullString{}
			}
		}
		if err := rows.Scan(targets...); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		row := make(map[string]any, len(schema))
		for i, col := range schema {
			row[col.Name] = cellValue(targets[i])
		}
		if err := d.AppendRow(table, row); err != nil {
			return fmt.Errorf("hydrate %s: %w", table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", table, err)
	}
	return nil
}

func cellValue(target any) any {
	switch v := target.(type) {
	case *sql.NullInt64:
		if v.Valid {
			return int(v.Int64)
		}
	case *sql.NullFloat64:
		if v.Valid {
			return v.Float64
		}
	case *sql.NullBool:
		if v.Valid {
			return v.Bool
		}
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
	}
	return nil
}

// SaveDataset writes the full corpus inside one transaction, one INSERT
// per row. Intended for seeding an empty corpus.
func SaveDataset(ctx context.Context, db *sql.DB, d *refdata.Dataset, ph Placeholder) (retErr error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, table := range chem.TableNames() {
		if err := saveTable(ctx, tx, table, d, ph); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	committed = true
	return nil
}

func saveTable(ctx context.Context, tx *sql.Tx, table chem.Table, d *refdata.Dataset, ph Placeholder) error {
	schema, err := chem.TableSchema(table)
	if err != nil {
		return err
	}
	rows, err := d.TableRows(table)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	names := make([]string, len(schema))
	binds := make([]string, len(schema))
	for i, col := range schema {
		names[i] = quote(col.Name)
		binds[i] = ph(i + 1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(string(table)), strings.Join(names, ", "), strings.Join(binds, ", "))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()
	for _, row := range rows {
		args := make([]any, len(schema))
		for i, col := range schema {
			args[i] = row[col.Name]
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}
