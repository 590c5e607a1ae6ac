package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func setupGuarded(t *testing.T) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.GET("/cms", AdminKey("s3cret"), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminKey_ValidKey(t *testing.T) {
	r := setupGuarded(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	req.Header.Set(AdminKeyHeader, "s3cret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKey_MissingHeader(t *testing.T) {
	r := setupGuarded(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey_WrongKey(t *testing.T) {
	r := setupGuarded(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	req.Header.Set(AdminKeyHeader, "guess")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
