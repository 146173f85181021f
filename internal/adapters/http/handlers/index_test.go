package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexHandler(t *testing.T) {
	handler := NewIndexHandler()

	require.NotNil(t, handler)
}

func TestIndexHandler_GetIndex(t *testing.T) {
	handler := NewIndexHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler.GetIndex(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp IndexResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to the Quotes API", resp.Message)

	expectedEndpoints := []string{
		"/quote/random",
		"/quotes",
		"/quotes/tag/{tag}",
		"/stats",
	}
	for _, ep := range expectedEndpoints {
		assert.Contains(t, resp.Endpoints, ep)
		assert.NotEmpty(t, resp.Endpoints[ep])
	}
}

func TestIndexHandler_RegisterIndexRoutes(t *testing.T) {
	handler := NewIndexHandler()

	router := gin.New()
	handler.RegisterIndexRoutes(router.Group(""))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Quotes API")
}
