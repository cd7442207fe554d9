package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"catalog/models"
	"catalog/routes"
	"catalog/store"
)

const testToken = "test-admin-token"

// memStore is an in-memory Store for exercising the handlers without a
// database. It mirrors the ordering and patch semantics of the SQL store.
type memStore struct {
	mu     sync.Mutex
	nextID int
	rows   []models.Product

	lastLimit  int
	lastOffset int
	fail       error // when set, every call returns it
}

func (m *memStore) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	m.lastLimit, m.lastOffset = limit, offset
	if limit < 0 || offset < 0 {
		return nil, errors.New("negative limit or offset")
	}
	if offset >= len(m.rows) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(m.rows) {
		end = len(m.rows)
	}
	out := make([]models.Product, end-offset)
	copy(out, m.rows[offset:end])
	return out, nil
}

func (m *memStore) Create(ctx context.Context, in models.NewProduct) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return models.Product{}, m.fail
	}
	m.nextID++
	p := models.Product{ProductID: m.nextID, Name: in.Name, Price: in.Price, ImageURL: in.ImageURL}
	m.rows = append(m.rows, p)
	return p, nil
}

func (m *memStore) Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return models.Product{}, m.fail
	}
	for i := range m.rows {
		if m.rows[i].ProductID != id {
			continue
		}
		if patch.Name != nil {
			m.rows[i].Name = *patch.Name
		}
		if patch.Price != nil {
			m.rows[i].Price = *patch.Price
		}
		if patch.SetImage {
			m.rows[i].ImageURL = patch.ImageURL
		}
		return m.rows[i], nil
	}
	return models.Product{}, store.ErrNotFound
}

func (m *memStore) snapshot() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, len(m.rows))
	copy(out, m.rows)
	return out
}

func newTestApp(st store.Store) *fiber.App {
	app := fiber.New()
	routes.RegisterRoutes(app, st, testToken)
	return app
}

func jsonReq(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asAdmin(req *http.Request) *http.Request {
	req.Header.Set("X-Admin-Token", testToken)
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func productField(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	p, ok := body["product"].(map[string]interface{})
	require.True(t, ok, "response has no product object: %v", body)
	return p
}
