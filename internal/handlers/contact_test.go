package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

func TestContactSubmit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mockStore[models.ContactSubmission])
		wantStatus int
	}{
		{
			name: "valid submission",
			body: `{"name":" Jane Doe ","email":"jane@example.com","message":"Need a quote","company":"Acme"}`,
			mockSetup: func(m *mockStore[models.ContactSubmission]) {
				m.On("Create", mock.Anything, repository.Scope{}, map[string]any{
					"name":    "Jane Doe",
					"email":   "jane@example.com",
					"phone":   "",
					"company": "Acme",
					"message": "Need a quote",
				}).Return(&models.ContactSubmission{ID: uuid.New()}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			body:       `{"name":"Jane","message":"Hi"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Jane","email":"not-an-email","message":"Hi"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank message",
			body:       `{"name":"Jane","email":"jane@example.com","message":"   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"Jane","email":"jane@example.com","message":"Hi"}`,
			mockSetup: func(m *mockStore[models.ContactSubmission]) {
				m.On("Create", mock.Anything, repository.Scope{}, mock.Anything).
					Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore[models.ContactSubmission]{}
			if tt.mockSetup != nil {
				tt.mockSetup(store)
			}
			h := handlers.NewContactHandler(store, nil)

			router := gin.New()
			router.POST("/contact", h.Submit)

			w := serve(router, http.MethodPost, "/contact", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			store.AssertExpectations(t)
		})
	}
}
