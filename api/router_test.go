package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"trafficapi/api/middleware"
	"trafficapi/config"
	"trafficapi/internal/repository"
	"trafficapi/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter(t *testing.T) {
	db, err := repository.InitDB(config.Database{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "traffic.db") + "?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	defer repository.CloseDB(db)
	_, err = repository.Seed(context.Background(), db)
	require.NoError(t, err)

	router := SetupRouter(service.NewServices(db))

	t.Run("traffic", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/traffic?ip=192.168.5.110", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, gjson.Parse(w.Body.String()).Array(), 3)
	})

	t.Run("只有一个接口", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/traffic", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Logger(), middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", gjson.Get(w.Body.String(), "error").String())
	assert.NotContains(t, w.Body.String(), "goroutine")
}
