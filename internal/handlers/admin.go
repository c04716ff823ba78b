package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

// ResourceConfig describes one admin CRUD resource.
type ResourceConfig struct {
	// Entity is the table entity name used in events and metrics.
	Entity string
	// Label names the resource in error messages.
	Label string
	// Plural is the JSON key of list responses.
	Plural string
	// IDParam is the route parameter holding the row id. Defaults to "id".
	IDParam string
	// ParentParam is the route parameter of the parent row for child tables.
	ParentParam string
	// Filters are query parameters passed to List as column filters.
	Filters   []string
	NewCreate func() models.CreateRequest
	NewUpdate func() models.UpdateRequest
	// EmptyUpdate accepts a PUT without a body, leaving defaults to Updates.
	EmptyUpdate bool
}

// ParentCheck verifies the full parent chain of a nested route, e.g. that a
// sub-product belongs to the product in the URL.
type ParentCheck func(c *gin.Context) error

// AdminResource serves list/get/create/update/delete for one table.
type AdminResource[T any] struct {
	cfg         ResourceConfig
	store       ContentStore[T]
	notifier    *Notifier
	parentCheck ParentCheck
}

func NewAdminResource[T any](store ContentStore[T], cfg ResourceConfig, notifier *Notifier) *AdminResource[T] {
	if cfg.IDParam == "" {
		cfg.IDParam = "id"
	}
	return &AdminResource[T]{cfg: cfg, store: store, notifier: notifier}
}

// WithParentCheck runs check before every operation.
func (r *AdminResource[T]) WithParentCheck(check ParentCheck) *AdminResource[T] {
	r.parentCheck = check
	return r
}

// scope resolves the parent scope of the request, writing the error
// response itself when it fails.
func (r *AdminResource[T]) scope(c *gin.Context) (repository.Scope, bool) {
	if r.cfg.ParentParam == "" {
		return repository.Scope{}, true
	}
	parentID, ok := parseUUID(c, r.cfg.ParentParam, "parent")
	if !ok {
		return repository.Scope{}, false
	}
	if r.parentCheck != nil {
		if err := r.parentCheck(c); err != nil {
			handleRepositoryError(c, err, "Parent", "fetch")
			return repository.Scope{}, false
		}
	}
	return repository.Scope{ParentID: parentID}, true
}

// List handles GET /<resource>
func (r *AdminResource[T]) List(c *gin.Context) {
	scope, ok := r.scope(c)
	if !ok {
		return
	}

	opts := repository.ListOptions{
		ParentID: scope.ParentID,
		Limit:    queryLimit(c),
	}
	for _, name := range r.cfg.Filters {
		raw, present := c.GetQuery(name)
		if !present {
			continue
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string]any, len(r.cfg.Filters))
		}
		opts.Filters[name] = filterValue(raw)
	}

	items, err := r.store.List(c.Request.Context(), opts)
	if err != nil {
		handleRepositoryError(c, err, r.cfg.Label, "list")
		return
	}
	if items == nil {
		items = []T{}
	}

	c.JSON(http.StatusOK, gin.H{
		r.cfg.Plural: items,
		"count":      len(items),
	})
}

// Get handles GET /<resource>/:id
func (r *AdminResource[T]) Get(c *gin.Context) {
	scope, ok := r.scope(c)
	if !ok {
		return
	}
	id, ok := parseUUID(c, r.cfg.IDParam, r.cfg.Label)
	if !ok {
		return
	}

	item, err := r.store.Get(c.Request.Context(), id, scope)
	if err != nil {
		handleRepositoryError(c, err, r.cfg.Label, "fetch")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /<resource>
func (r *AdminResource[T]) Create(c *gin.Context) {
	if r.cfg.NewCreate == nil {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": r.cfg.Label + " cannot be created"})
		return
	}
	scope, ok := r.scope(c)
	if !ok {
		return
	}

	req := r.cfg.NewCreate()
	if !bindJSON(c, req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationErrorOr400(c, err)
		return
	}
	values, err := req.Values()
	if err != nil {
		handleValidationErrorOr400(c, err)
		return
	}

	item, err := r.store.Create(c.Request.Context(), scope, values)
	if err != nil {
		handleRepositoryError(c, err, r.cfg.Label, "create")
		return
	}

	r.notify(c, infraevents.ContentCreated, item, scope, nil)
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /<resource>/:id
func (r *AdminResource[T]) Update(c *gin.Context) {
	if r.cfg.NewUpdate == nil {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": r.cfg.Label + " cannot be updated"})
		return
	}
	scope, ok := r.scope(c)
	if !ok {
		return
	}
	id, ok := parseUUID(c, r.cfg.IDParam, r.cfg.Label)
	if !ok {
		return
	}

	req := r.cfg.NewUpdate()
	if !(r.cfg.EmptyUpdate && c.Request.ContentLength == 0) && !bindJSON(c, req) {
		return
	}
	if err := req.Validate(); err != nil {
		handleValidationErrorOr400(c, err)
		return
	}
	updates, err := req.Updates()
	if err != nil {
		handleValidationErrorOr400(c, err)
		return
	}

	item, err := r.store.Update(c.Request.Context(), id, scope, updates)
	if err != nil {
		handleRepositoryError(c, err, r.cfg.Label, "update")
		return
	}

	r.notify(c, infraevents.ContentUpdated, item, scope, updatedPayload(updates))
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /<resource>/:id
func (r *AdminResource[T]) Delete(c *gin.Context) {
	scope, ok := r.scope(c)
	if !ok {
		return
	}
	id, ok := parseUUID(c, r.cfg.IDParam, r.cfg.Label)
	if !ok {
		return
	}

	if err := r.store.Delete(c.Request.Context(), id, scope); err != nil {
		handleRepositoryError(c, err, r.cfg.Label, "delete")
		return
	}

	r.notifier.Changed(c.Request.Context(), Change{
		Type:     infraevents.ContentDeleted,
		Entity:   r.cfg.Entity,
		ID:       id,
		ParentID: scope.ParentID,
	})
	c.Status(http.StatusNoContent)
}

func (r *AdminResource[T]) notify(c *gin.Context, t infraevents.EventType, item *T, scope repository.Scope, payload any) {
	ch := Change{
		Type:     t,
		Entity:   r.cfg.Entity,
		ParentID: scope.ParentID,
		Payload:  payload,
	}
	if e, ok := any(item).(models.Entity); ok {
		ch.ID = e.EntityID()
	}
	if s, ok := any(item).(models.Slugged); ok {
		ch.Slug = s.EntitySlug()
	}
	r.notifier.Changed(c.Request.Context(), ch)
}

func updatedPayload(updates map[string]any) infraevents.UpdatedPayload {
	fields := make([]string, 0, len(updates))
	for k := range updates {
		fields = append(fields, k)
	}
	slices.Sort(fields)

	payload := infraevents.UpdatedPayload{ChangedFields: fields}
	if published, ok := updates["published"].(bool); ok {
		payload.Published = &published
	}
	return payload
}

// handleValidationErrorOr400 reports request-level failures as 400 even when
// the error is not one of the known validation sentinels.
func handleValidationErrorOr400(c *gin.Context, err error) {
	if handleValidationError(c, err) {
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// filterValue turns a query value into a filter argument: "true" and
// "false" become booleans, anything else stays a string.
func filterValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

// subProductInProduct checks that :subId belongs to :id.
func subProductInProduct(subProducts ContentStore[models.SubProduct], productParam, subParam string) ParentCheck {
	return func(c *gin.Context) error {
		productID, err := uuid.Parse(c.Param(productParam))
		if err != nil {
			return models.ErrNotFound
		}
		subID, err := uuid.Parse(c.Param(subParam))
		if err != nil {
			return models.ErrNotFound
		}
		_, err = subProducts.Get(c.Request.Context(), subID, repository.Scope{ParentID: productID})
		return err
	}
}
