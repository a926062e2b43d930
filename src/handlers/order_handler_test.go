package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-backend/src/auth"
	"compras-backend/src/handlers"
	"compras-backend/src/middlewares"
	"compras-backend/src/routes"
)

const testSecret = "handler-test-secret"

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	router := gin.New()
	api := router.Group("", middlewares.JWTAuth(testSecret))
	routes.RegisterOrderRoutes(api.Group("/orders"), &handlers.OrderHandler{Log: quiet})
	routes.RegisterSupplierRoutes(api.Group("/suppliers"), &handlers.SupplierHandler{Log: quiet})
	routes.RegisterProductRoutes(api.Group("/products"), &handlers.ProductHandler{Log: quiet})

	return router
}

func testToken(t *testing.T, userID uint, role string) string {
	t.Helper()

	claims := auth.Claims{
		UserID: userID,
		Name:   "Usuario Test",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestAuthGate(t *testing.T) {
	router := setupTestRouter()

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token requerido", responseMessage(t, w))
	})

	t.Run("malformed token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/orders", "esto-no-es-un-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token inválido o expirado", responseMessage(t, w))
	})

	t.Run("expired token", func(t *testing.T) {
		claims := auth.Claims{
			UserID: 1,
			Role:   "user",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := doRequest(router, http.MethodGet, "/orders", signed, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateOrderBinding(t *testing.T) {
	router := setupTestRouter()
	token := testToken(t, 2, "user")

	t.Run("empty items are rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders", token, gin.H{
			"supplier_id": 1,
			"items":       []gin.H{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Supplier ID y al menos un item son requeridos", responseMessage(t, w))
	})

	t.Run("missing supplier is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders", token, gin.H{
			"items": []gin.H{{"product_id": 1, "quantity": 2, "unit_price": 10}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("item without product is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders", token, gin.H{
			"supplier_id": 1,
			"items":       []gin.H{{"quantity": 2, "unit_price": 10}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparseable delivery date is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/orders", token, gin.H{
			"supplier_id":            1,
			"expected_delivery_date": "31/12/2024",
			"items":                  []gin.H{{"product_id": 1, "quantity": 2, "unit_price": 10}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Fecha de entrega inválida. Use YYYY-MM-DD o RFC3339", responseMessage(t, w))
	})
}

func TestStatusUpdateBinding(t *testing.T) {
	router := setupTestRouter()
	token := testToken(t, 2, "user")

	t.Run("missing status is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/orders/1/status", token, gin.H{
			"notes": "sin status",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Status es requerido", responseMessage(t, w))
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/orders/abc/status", token, gin.H{
			"status": "aprobada",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ID de orden inválido", responseMessage(t, w))
	})
}

func TestReceiveItemsBinding(t *testing.T) {
	router := setupTestRouter()
	token := testToken(t, 2, "user")

	t.Run("empty items are rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/orders/1/receive", token, gin.H{
			"items": []gin.H{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Se requieren items", responseMessage(t, w))
	})

	t.Run("item without received_quantity is rejected", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/orders/1/receive", token, gin.H{
			"items": []gin.H{{"id": 1}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminOnlyRoutes(t *testing.T) {
	router := setupTestRouter()

	t.Run("non-admin cannot mutate catalog", func(t *testing.T) {
		token := testToken(t, 2, "user")

		w := doRequest(router, http.MethodPost, "/suppliers", token, gin.H{"name": "Acme"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Se requiere rol de administrador", responseMessage(t, w))

		w = doRequest(router, http.MethodDelete, "/products/1", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin with invalid body fails binding", func(t *testing.T) {
		token := testToken(t, 1, "admin")

		w := doRequest(router, http.MethodPost, "/suppliers", token, gin.H{"contact_person": "Juan"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doRequest(router, http.MethodPost, "/products", token, gin.H{"unit": "kg"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
