package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Store, *logic.LedgerLogic) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore(storage.NewMemoryMedium())
	ledger := logic.NewLedgerLogic(store, nil)
	treasury := logic.NewTreasuryLogic(store.Medium(), nil)
	auth := logic.NewAuthLogic(store, ledger)

	return Setup(store, ledger, treasury, auth), store, ledger
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "demo123",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swarm-service")
}

func TestDeployMissionFlow(t *testing.T) {
	mission := gin.H{
		"title":            "Patch the importer",
		"description":      "CSV import drops rows",
		"desiredOutcome":   "No rows lost",
		"platform":         "bolt.new",
		"swarmTokenReward": 90,
	}

	t.Run("creator deploys and pays the fee", func(t *testing.T) {
		r, store, _ := newTestRouter(t)
		login(t, r, "alex@example.com")

		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", mission)
		require.Equal(t, http.StatusCreated, w.Code)

		creator, _ := store.FindUser("user-1")
		assert.Equal(t, int64(900), creator.SwarmTokens)
		assert.Len(t, store.Projects(), 10)
	})

	t.Run("insufficient balance yields 402 and no project", func(t *testing.T) {
		r, store, ledger := newTestRouter(t)
		login(t, r, "alex@example.com")
		ledger.SetBalance("user-1", 50)

		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", mission)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		creator, _ := store.FindUser("user-1")
		assert.Equal(t, int64(50), creator.SwarmTokens)
		assert.Len(t, store.Projects(), 9)
	})

	t.Run("finisher role cannot deploy", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		login(t, r, "sarah@example.com")

		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", mission)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous cannot deploy", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/v1/projects", mission)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDistributeEndpoint(t *testing.T) {
	r, store, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/project-1/distribute", gin.H{
		"finisherId": "user-2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project, _ := store.FindProject("project-1")
	assert.Equal(t, "completed", string(project.Status))

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/p-bogus/distribute", gin.H{
		"finisherId": "user-2",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTreasuryEndpoints(t *testing.T) {
	r, _, _ := newTestRouter(t)
	login(t, r, "marcus@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/treasury/invest", gin.H{"amount": 500})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/treasury/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Stats struct {
				TotalTokens    int64 `json:"totalTokens"`
				TotalInvestors int   `json:"totalInvestors"`
			} `json:"stats"`
			EstimatedApy float64 `json:"estimatedApy"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(125500), resp.Data.Stats.TotalTokens)
	assert.Equal(t, 1, resp.Data.Stats.TotalInvestors)
	assert.Greater(t, resp.Data.EstimatedApy, 8.0)
}

func TestProjectFilterAndUpdate(t *testing.T) {
	r, store, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects?status=open", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Data.Total)

	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/project-2", gin.H{
		"status":     "in-progress",
		"finisherId": "user-3",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project, _ := store.FindProject("project-2")
	assert.Equal(t, "in-progress", string(project.Status))
	assert.Equal(t, "user-3", project.FinisherId)
}
