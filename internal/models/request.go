// Package models defines the site's content entities, the admin request
// payloads that create and update them, and shared errors.
package models

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/growlocal360/maxx-energy/internal/richtext"
	"github.com/growlocal360/maxx-energy/internal/slug"
)

// CreateRequest is an admin create payload. Values returns the column
// values to insert.
type CreateRequest interface {
	Validate() error
	Values() (map[string]any, error)
}

// UpdateRequest is an admin update payload. Updates returns only the
// columns present in the request.
type UpdateRequest interface {
	Validate() error
	Updates() (map[string]any, error)
}

// Entity is implemented by every stored content row.
type Entity interface {
	EntityID() uuid.UUID
}

// Slugged is implemented by entities addressed by slug on the public site.
type Slugged interface {
	EntitySlug() string
}

// Presenter fills computed public fields (excerpt, rendered HTML).
type Presenter interface {
	Present(detail bool)
}

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

// columnValues maps the db-tagged fields of a request struct to column
// values. Nil pointers and absent rich-text fields are skipped, so the same
// helper serves creates (plain fields) and partial updates (pointer fields).
// Rich-text fields are parsed with richtext.Parse.
func columnValues(req any) (map[string]any, error) {
	v := reflect.Indirect(reflect.ValueOf(req))
	t := v.Type()
	values := make(map[string]any, t.NumField())

	for i := range t.NumField() {
		column := t.Field(i).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		field := v.Field(i)
		if field.Type() == rawMessageType {
			raw := field.Bytes()
			if len(raw) == 0 {
				continue
			}
			doc, err := richtext.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", column, err)
			}
			values[column] = doc
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		if field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.String {
			values[column] = pq.StringArray(field.Interface().([]string))
			continue
		}
		values[column] = field.Interface()
	}
	return values, nil
}

// createValues runs columnValues and derives the slug from source when the
// request left it blank.
func createValues(req any, source string) (map[string]any, error) {
	values, err := columnValues(req)
	if err != nil {
		return nil, err
	}
	if _, hasSlug := values["slug"]; !hasSlug {
		return values, nil
	}

	s, _ := values["slug"].(string)
	if s == "" {
		s = source
	}
	if s = slug.Make(s); s == "" {
		return nil, ErrInvalidSlug
	}
	values["slug"] = s
	return values, nil
}

// updateValues runs columnValues, normalises a provided slug and rejects
// empty updates.
func updateValues(req any) (map[string]any, error) {
	values, err := columnValues(req)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	if s, ok := values["slug"].(string); ok {
		if s = slug.Make(s); s == "" {
			return nil, ErrInvalidSlug
		}
		values["slug"] = s
	}
	return values, nil
}

// summary prefers an explicit excerpt over one derived from the document.
func summary(explicit string, doc *richtext.Node, maxLength int) string {
	if explicit != "" {
		return explicit
	}
	return richtext.Excerpt(doc, maxLength)
}
