package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/importer"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

const (
	importFormField = "file"
	// MaxImportSize bounds an uploaded workbook.
	MaxImportSize = 10 << 20
)

// ImportResponse reports the outcome of a spreadsheet import.
type ImportResponse struct {
	Inserted int                    `json:"inserted"`
	Errors   []importer.ImportError `json:"errors"`
}

// ItemImportHandler bulk-loads product items from an .xlsx upload.
type ItemImportHandler struct {
	items       ContentStore[models.ProductItem]
	bulk        BulkStore[models.ProductItem]
	parentCheck ParentCheck
	notifier    *Notifier
}

func NewItemImportHandler(stores Stores, bulk BulkStore[models.ProductItem], notifier *Notifier) *ItemImportHandler {
	return &ItemImportHandler{
		items:       stores.ProductItems,
		bulk:        bulk,
		parentCheck: subProductInProduct(stores.SubProducts, ParamID, ParamSubID),
		notifier:    notifier,
	}
}

// Import handles POST /products/:id/sub-products/:subId/items/import.
// Valid rows are appended after the existing items in one transaction;
// invalid rows are reported and skipped.
func (h *ItemImportHandler) Import(c *gin.Context) {
	subID, ok := parseUUID(c, ParamSubID, "Sub-product")
	if !ok {
		return
	}
	if err := h.parentCheck(c); err != nil {
		handleRepositoryError(c, err, "Sub-product", "fetch")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImportSize)
	header, err := c.FormFile(importFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An .xlsx file is required in the \"file\" field"})
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only .xlsx workbooks are supported"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	result, err := importer.ParseItems(file)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, importer.ErrNoSheets) && !errors.Is(err, importer.ErrMissingColumns) &&
			!errors.Is(err, importer.ErrTooManyRows) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := ImportResponse{Errors: result.Errors}
	if resp.Errors == nil {
		resp.Errors = []importer.ImportError{}
	}
	if len(result.Rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "No valid rows to import",
			"errors": resp.Errors,
		})
		return
	}

	ctx := c.Request.Context()
	scope := repository.Scope{ParentID: subID}

	existing, err := h.items.List(ctx, repository.ListOptions{ParentID: subID})
	if err != nil {
		handleRepositoryError(c, err, "Product item", "list")
		return
	}

	rows := make([]map[string]any, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = row.Values(len(existing) + i)
	}

	inserted, err := h.bulk.CreateMany(ctx, scope, rows)
	if err != nil {
		handleRepositoryError(c, err, "Product item", "import")
		return
	}
	resp.Inserted = len(inserted)

	infralogger.FromContext(ctx).Info("Imported product items",
		infralogger.String("sub_product_id", subID.String()),
		infralogger.Int("inserted", resp.Inserted),
		infralogger.Int("rejected", len(resp.Errors)),
	)
	h.notifier.Changed(ctx, Change{
		Type:     infraevents.ContentImported,
		Entity:   "product_item",
		ParentID: subID,
		Payload: infraevents.ImportedPayload{
			Inserted: resp.Inserted,
			Rejected: len(resp.Errors),
		},
	})

	c.JSON(http.StatusCreated, resp)
}
