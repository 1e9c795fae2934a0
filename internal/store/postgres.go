package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// table maps a record kind onto its Postgres shape. Column whitelists guard
// every piece of SQL built from caller input.
type table struct {
	name    string
	columns []string
	orderBy string
}

var tables = map[Kind]table{
	KindInquiry: {
		name:    "inquiries",
		columns: []string{"id", "name", "status", "email", "phone", "created_at"},
		orderBy: "created_at DESC",
	},
	KindOpportunity: {
		name:    "opportunities",
		columns: []string{"id", "source_inquiry_id", "name", "status", "email", "phone", "amount", "currency", "created_at"},
		orderBy: "created_at DESC",
	},
	KindCommunication: {
		name:    "communications",
		columns: []string{"id", "reference_kind", "reference_id", "direction", "communicated_at"},
		orderBy: "communicated_at DESC",
	},
	KindEvent: {
		name:    "events",
		columns: []string{"id", "reference_id", "subject", "starts_at", "ends_at"},
		orderBy: "starts_at ASC",
	},
}

func (t table) hasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Postgres serves the record API from a local database. Used for
// self-hosted deployments and development; the hosted backend is the
// production default.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &Postgres{db: db}
}

func (p *Postgres) List(ctx context.Context, kind Kind, filters Filters) ([]Record, error) {
	t, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1", strings.Join(t.columns, ", "), t.name)
	args := []interface{}{}
	i := 1
	for col, val := range filters {
		if !t.hasColumn(col) {
			return nil, fmt.Errorf("unknown filter %q for %s", col, kind)
		}
		query += fmt.Sprintf(" AND %s = $%d", col, i)
		args = append(args, val)
		i++
	}
	query += " ORDER BY " + t.orderBy

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		dest := make([]interface{}, len(t.columns))
		for j := range dest {
			var v interface{}
			dest[j] = &v
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		rec := Record{}
		for j, col := range t.columns {
			v := *(dest[j].(*interface{}))
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[col] = v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (p *Postgres) Create(ctx context.Context, kind Kind, values Record) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown record kind %q", kind)
	}

	cols := []string{}
	places := []string{}
	args := []interface{}{}
	i := 1
	// iterate the whitelist so column order is stable
	for _, col := range t.columns {
		v, present := values[col]
		if !present || col == "id" {
			continue
		}
		cols = append(cols, col)
		places = append(places, fmt.Sprintf("$%d", i))
		args = append(args, v)
		i++
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("no values to insert into %s", kind)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(cols, ", "), strings.Join(places, ", "),
	)
	var id int64
	if err := p.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (p *Postgres) SetField(ctx context.Context, kind Kind, id, field string, value any) error {
	t, ok := tables[kind]
	if !ok {
		return fmt.Errorf("unknown record kind %q", kind)
	}
	if !t.hasColumn(field) || field == "id" {
		return fmt.Errorf("unknown field %q for %s", field, kind)
	}

	query := fmt.Sprintf("UPDATE %s SET %s=$1 WHERE id=$2", t.name, field)
	res, err := p.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &APIError{Status: 404, Message: fmt.Sprintf("no %s record with id %s", kind, id)}
	}
	return nil
}
