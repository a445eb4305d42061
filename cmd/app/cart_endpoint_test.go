package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/middleware"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("connection refused host=db:5432")

// brokenCartStore fails every call, standing in for a lost database.
type brokenCartStore struct{}

func (brokenCartStore) GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error) {
	return nil, errStorage
}
func (brokenCartStore) GetItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	return nil, errStorage
}
func (brokenCartStore) AddOrIncrementItem(ctx context.Context, cartID, productID int64, qty int) (int64, error) {
	return 0, errStorage
}
func (brokenCartStore) GetItem(ctx context.Context, itemID int64) (*model.CartItem, error) {
	return nil, errStorage
}
func (brokenCartStore) SetItemQuantity(ctx context.Context, itemID int64, qty int) error {
	return errStorage
}
func (brokenCartStore) DeleteItem(ctx context.Context, itemID int64) error { return errStorage }
func (brokenCartStore) ReplaceItems(ctx context.Context, cartID int64, lines []model.CartLine) error {
	return errStorage
}

type singleProductStore struct{ p model.Product }

func (s singleProductStore) Create(ctx context.Context, p *model.Product) (int64, error) {
	return 0, errStorage
}
func (s singleProductStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if id != s.p.ProductID {
		return nil, errors.New("product not found")
	}
	out := s.p
	return &out, nil
}
func (s singleProductStore) List(ctx context.Context, f model.ProductFilter) (*model.ProductPage, error) {
	return &model.ProductPage{}, nil
}
func (s singleProductStore) Update(ctx context.Context, p *model.Product) error { return errStorage }
func (s singleProductStore) Delete(ctx context.Context, id int64) error         { return errStorage }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	pair, err := middleware.GenerateTokenPair(1, "alice")
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	return req
}

func TestAddToCartStorageFailureIsInternal(t *testing.T) {
	products := singleProductStore{p: model.Product{ProductID: 1, Name: "Mug", Price: decimal.NewFromInt(5)}}
	cartSvc := services.NewCartService(brokenCartStore{}, products)

	e := echo.New()
	registerCartRoutes(e.Group("/api"), cartSvc, testLogger())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/cart/add", `{"product_id":1,"quantity":1}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), errStorage.Error())
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestAddToCartUnknownProductIsBadRequest(t *testing.T) {
	products := singleProductStore{p: model.Product{ProductID: 1, Name: "Mug", Price: decimal.NewFromInt(5)}}
	cartSvc := services.NewCartService(brokenCartStore{}, products)

	e := echo.New()
	registerCartRoutes(e.Group("/api"), cartSvc, testLogger())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/cart/add", `{"product_id":999,"quantity":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutStorageFailureIsInternal(t *testing.T) {
	products := singleProductStore{p: model.Product{ProductID: 1, Name: "Mug", Price: decimal.NewFromInt(5)}}
	cartSvc := services.NewCartService(brokenCartStore{}, products)
	orderSvc := services.NewOrderService(brokenOrderStore{}, brokenCartStore{})

	e := echo.New()
	registerOrderRoutes(e.Group("/api"), orderSvc, cartSvc, testLogger())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/orders/create", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), errStorage.Error())
	assert.Contains(t, rec.Body.String(), "internal error")
}

type brokenOrderStore struct{}

func (brokenOrderStore) CreateFromCart(ctx context.Context, userID, cartID int64) (*model.Order, error) {
	return nil, errStorage
}
func (brokenOrderStore) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return nil, errStorage
}
func (brokenOrderStore) GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	return nil, errStorage
}
func (brokenOrderStore) DeleteByUser(ctx context.Context, userID int64) error { return errStorage }
