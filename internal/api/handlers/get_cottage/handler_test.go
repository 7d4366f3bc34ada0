package get_cottage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kesamokki/booking-service/internal/service/cottages"
	"github.com/kesamokki/booking-service/internal/service/cottages/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetBySlug(ctx context.Context, slug string) (*models.CottageResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CottageResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	svc := new(mockService)
	svc.On("GetBySlug", mock.Anything, "rantamokki").
		Return(&models.CottageResponse{ID: 7, Slug: "rantamokki", Name: "Rantamökki", BasePrice: "100.00"}, nil)
	svc.On("GetBySlug", mock.Anything, "hidden").Return(nil, cottages.ErrCottageNotFound)

	router := mux.NewRouter()
	router.HandleFunc("/cottages/{slug}", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cottages/rantamokki", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"base_price":"100.00"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cottages/hidden", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
