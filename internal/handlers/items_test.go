package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

func xlsxUpload(t *testing.T, filename string, rows [][]string) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	require.NoError(t, f.Write(part))
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestItemImport(t *testing.T) {
	productID, subID := uuid.New(), uuid.New()
	target := "/products/" + productID.String() + "/sub-products/" + subID.String() + "/items/import"

	setup := func(t *testing.T) (*gin.Engine, *mockStore[models.SubProduct], *mockStore[models.ProductItem]) {
		t.Helper()
		subs := &mockStore[models.SubProduct]{}
		items := &mockStore[models.ProductItem]{}
		h := handlers.NewItemImportHandler(handlers.Stores{
			SubProducts:  subs,
			ProductItems: items,
		}, items, nil)

		router := gin.New()
		router.POST("/products/:id/sub-products/:subId/items/import", h.Import)
		t.Cleanup(func() {
			subs.AssertExpectations(t)
			items.AssertExpectations(t)
		})
		return router, subs, items
	}

	post := func(router http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, target, body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid rows inserted after existing items", func(t *testing.T) {
		router, subs, items := setup(t)
		subs.On("Get", mock.Anything, subID, repository.Scope{ParentID: productID}).
			Return(&models.SubProduct{ID: subID}, nil)
		items.On("List", mock.Anything, repository.ListOptions{ParentID: subID}).
			Return([]models.ProductItem{{}, {}}, nil)
		items.On("CreateMany", mock.Anything, repository.Scope{ParentID: subID}, []map[string]any{
			{"family": "Friction Reducers", "trade_name": "FR-100", "uom": "gal", "packing": "tote", "display_order": 2},
		}).Return([]models.ProductItem{{ID: uuid.New()}}, nil)

		body, ct := xlsxUpload(t, "items.xlsx", [][]string{
			{"Family", "Trade Name", "UOM", "Packing"},
			{"Friction Reducers", "FR-100", "gal", "tote"},
			{"Biocides", "", "lb", ""},
		})
		w := post(router, body, ct)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got handlers.ImportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.Inserted)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, 3, got.Errors[0].Row)
	})

	t.Run("no valid rows", func(t *testing.T) {
		router, subs, _ := setup(t)
		subs.On("Get", mock.Anything, subID, repository.Scope{ParentID: productID}).
			Return(&models.SubProduct{ID: subID}, nil)

		body, ct := xlsxUpload(t, "items.xlsx", [][]string{
			{"Family", "Trade Name"},
			{"", "FR-100"},
		})
		w := post(router, body, ct)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong extension", func(t *testing.T) {
		router, subs, _ := setup(t)
		subs.On("Get", mock.Anything, subID, repository.Scope{ParentID: productID}).
			Return(&models.SubProduct{ID: subID}, nil)

		body, ct := xlsxUpload(t, "items.csv", [][]string{{"Family", "Trade Name"}})
		w := post(router, body, ct)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown sub-product", func(t *testing.T) {
		router, subs, _ := setup(t)
		subs.On("Get", mock.Anything, subID, repository.Scope{ParentID: productID}).
			Return(nil, models.ErrNotFound)

		body, ct := xlsxUpload(t, "items.xlsx", [][]string{{"Family", "Trade Name"}})
		w := post(router, body, ct)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
