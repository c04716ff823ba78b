package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/growlocal360/maxx-energy/internal/models"
)

const tracerName = "github.com/growlocal360/maxx-energy/internal/repository"

// ListOptions narrows a List or GetBySlug call.
type ListOptions struct {
	// PublishedOnly restricts to rows visible on the public site.
	PublishedOnly bool
	// ParentID scopes child tables to one parent.
	ParentID uuid.UUID
	// Filters are equality conditions on whitelisted columns.
	Filters map[string]any
	Limit   int
}

// Scope restricts single-row operations on child tables to one parent.
type Scope struct {
	ParentID uuid.UUID
}

// Store is the generic CRUD repository for one content table. T is the row
// model; its db tags define the selected columns.
type Store[T any] struct {
	db      *sqlx.DB
	table   Table
	columns []string
	tracer  trace.Tracer
	now     func() time.Time
}

func NewStore[T any](db *sqlx.DB, table Table) *Store[T] {
	return &Store[T]{
		db:      db,
		table:   table,
		columns: dbColumns(reflect.TypeFor[T]()),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}

// Table returns the descriptor the store was built with.
func (s *Store[T]) Table() Table {
	return s.table
}

func dbColumns(t reflect.Type) []string {
	cols := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

func (s *Store[T]) selectList() string {
	return strings.Join(s.columns, ", ")
}

func (s *Store[T]) hasColumn(name string) bool {
	for _, c := range s.columns {
		if c == name {
			return true
		}
	}
	return false
}

func (s *Store[T]) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "content."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.table", s.table.Name),
		))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// where accumulates AND conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (s *Store[T]) listWhere(opts ListOptions) (*where, error) {
	w := &where{}
	if opts.PublishedOnly {
		if s.table.Publishable {
			w.raw("published = true")
		}
		if s.table.PublicWhere != "" {
			w.raw(s.table.PublicWhere)
		}
	}
	if opts.ParentID != uuid.Nil && s.table.ParentColumn != "" {
		w.add(s.table.ParentColumn+" = $%d", opts.ParentID)
	}

	keys := make([]string, 0, len(opts.Filters))
	for k := range opts.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !s.hasColumn(k) {
			return nil, fmt.Errorf("list %s: unknown filter column %q", s.table.Entity, k)
		}
		w.add(k+" = $%d", opts.Filters[k])
	}
	return w, nil
}

// List returns rows matching opts in the table's admin or public order.
func (s *Store[T]) List(ctx context.Context, opts ListOptions) (items []T, err error) {
	ctx, span := s.startSpan(ctx, "list")
	defer func() { endSpan(span, err) }()

	w, err := s.listWhere(opts)
	if err != nil {
		return nil, err
	}

	order := s.table.Order
	if opts.PublishedOnly {
		order = s.table.publicOrder()
	}

	// #nosec G202 -- table, columns and order come from static descriptors
	query := "SELECT " + s.selectList() + " FROM " + s.table.Name + w.String() + " ORDER BY " + order
	args := w.args
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	items = []T{}
	if err = s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, mapError("list", s.table, err)
	}
	return items, nil
}

// Get returns one row by id, scoped to a parent for child tables.
func (s *Store[T]) Get(ctx context.Context, id uuid.UUID, scope Scope) (item *T, err error) {
	ctx, span := s.startSpan(ctx, "get")
	defer func() { endSpan(span, err) }()

	w := &where{}
	w.add("id = $%d", id)
	s.scoped(w, scope)

	item = new(T)
	query := "SELECT " + s.selectList() + " FROM " + s.table.Name + w.String()
	if err = s.db.GetContext(ctx, item, query, w.args...); err != nil {
		return nil, mapError("get", s.table, err)
	}
	return item, nil
}

// GetBySlug returns the row with the given slug. opts.ParentID scopes the
// lookup for sub-products, whose slugs are unique per product.
func (s *Store[T]) GetBySlug(ctx context.Context, slug string, opts ListOptions) (item *T, err error) {
	ctx, span := s.startSpan(ctx, "get_by_slug")
	defer func() { endSpan(span, err) }()

	w, err := s.listWhere(opts)
	if err != nil {
		return nil, err
	}
	w.add("slug = $%d", slug)

	item = new(T)
	query := "SELECT " + s.selectList() + " FROM " + s.table.Name + w.String() + " LIMIT 1"
	if err = s.db.GetContext(ctx, item, query, w.args...); err != nil {
		return nil, mapError("get", s.table, err)
	}
	return item, nil
}

func (s *Store[T]) scoped(w *where, scope Scope) {
	if scope.ParentID != uuid.Nil && s.table.ParentColumn != "" {
		w.add(s.table.ParentColumn+" = $%d", scope.ParentID)
	}
}

// Create inserts a row built from values and returns it. The parent column
// is taken from scope.
func (s *Store[T]) Create(ctx context.Context, scope Scope, values map[string]any) (item *T, err error) {
	ctx, span := s.startSpan(ctx, "create")
	defer func() { endSpan(span, err) }()

	item = new(T)
	query, args := s.buildInsertQuery(scope, values)
	if err = s.db.QueryRowxContext(ctx, query, args...).StructScan(item); err != nil {
		return nil, mapError("create", s.table, err)
	}
	return item, nil
}

// CreateMany inserts all rows in one transaction; any failure rolls back
// the whole batch.
func (s *Store[T]) CreateMany(ctx context.Context, scope Scope, rows []map[string]any) (items []T, err error) {
	ctx, span := s.startSpan(ctx, "create_many")
	span.SetAttributes(attribute.Int("db.rows", len(rows)))
	defer func() { endSpan(span, err) }()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	items = make([]T, 0, len(rows))
	for _, values := range rows {
		var item T
		query, args := s.buildInsertQuery(scope, values)
		if err = tx.QueryRowxContext(ctx, query, args...).StructScan(&item); err != nil {
			return nil, mapError("create", s.table, err)
		}
		items = append(items, item)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return items, nil
}

func (s *Store[T]) buildInsertQuery(scope Scope, values map[string]any) (string, []any) {
	row := make(map[string]any, len(values)+3)
	for k, v := range values {
		row[k] = v
	}
	row["id"] = uuid.New()
	if s.table.ParentColumn != "" && scope.ParentID != uuid.Nil {
		row[s.table.ParentColumn] = scope.ParentID
	}
	if s.table.HasPublishedAt && row["published"] == true {
		if _, ok := row["published_at"]; !ok {
			row["published_at"] = s.now().UTC()
		}
	}

	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[c]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.table.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), s.selectList(),
	)
	return query, args
}

// Update writes only the given columns and bumps updated_at.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, scope Scope, updates map[string]any) (item *T, err error) {
	ctx, span := s.startSpan(ctx, "update")
	defer func() { endSpan(span, err) }()

	query, args, err := s.buildUpdateQuery(id, scope, updates)
	if err != nil {
		return nil, err
	}

	item = new(T)
	if err = s.db.QueryRowxContext(ctx, query, args...).StructScan(item); err != nil {
		return nil, mapError("update", s.table, err)
	}
	return item, nil
}

// buildUpdateQuery builds a dynamic UPDATE. Columns are emitted in sorted
// order so the statement text is stable.
func (s *Store[T]) buildUpdateQuery(id uuid.UUID, scope Scope, updates map[string]any) (string, []any, error) {
	if len(updates) == 0 {
		return "", nil, models.ErrNoFieldsToUpdate
	}

	cols := sortedKeys(updates)
	sets := make([]string, 0, len(cols)+2)
	w := &where{args: make([]any, 0, len(cols)+2)}
	for _, c := range cols {
		w.args = append(w.args, updates[c])
		sets = append(sets, fmt.Sprintf("%s = $%d", c, len(w.args)))
	}
	sets = append(sets, "updated_at = NOW()")

	_, explicit := updates["published_at"]
	if s.table.HasPublishedAt && updates["published"] == true && !explicit {
		sets = append(sets, "published_at = COALESCE(published_at, NOW())")
	}

	w.add("id = $%d", id)
	s.scoped(w, scope)

	query := fmt.Sprintf(
		"UPDATE %s SET %s%s RETURNING %s",
		s.table.Name, strings.Join(sets, ", "), w.String(), s.selectList(),
	)
	return query, w.args, nil
}

// Delete removes one row; a missing row is models.ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID, scope Scope) (err error) {
	ctx, span := s.startSpan(ctx, "delete")
	defer func() { endSpan(span, err) }()

	w := &where{}
	w.add("id = $%d", id)
	s.scoped(w, scope)

	result, err := s.db.ExecContext(ctx, "DELETE FROM "+s.table.Name+w.String(), w.args...)
	if err != nil {
		return mapError("delete", s.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
