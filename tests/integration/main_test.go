package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/funnelbot/leadintake/internal/api/middleware"
	"github.com/funnelbot/leadintake/internal/api/routes"
	"github.com/funnelbot/leadintake/internal/application"
	"github.com/funnelbot/leadintake/internal/config"
	"github.com/funnelbot/leadintake/internal/config/db"
	"github.com/funnelbot/leadintake/internal/repository"
	"github.com/funnelbot/leadintake/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	router   *gin.Engine
	repos    *repository.Repos
	services *application.Services
)

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	repos, services = routes.RegisterRoutes(router, db.DB)

	if err := services.Admin.Bootstrap("admin", "integration-secret"); err != nil {
		cleanup()
		panic(err)
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// doRequest makes one HTTP request against the router. A nil body means
// no payload; anything else is marshalled to JSON.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func adminToken(t *testing.T) string {
	w := doRequest(t, "POST", "/admin/login", "", map[string]string{
		"username": "admin",
		"password": "integration-secret",
	}, http.StatusOK)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}
