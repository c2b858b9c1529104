package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"usdc-credits.backend/internal/domain/entities"
	"usdc-credits.backend/internal/interfaces/http/middleware"
)

type statsRepoStub struct {
	txRepoStub

	counts map[entities.TransactionStatus]int64
	err    error
}

func (s *statsRepoStub) CountByStatus(_ context.Context) (map[entities.TransactionStatus]int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.counts, nil
}

func authAsRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserRoleKey, role)
	}
}

func newAdminRouter(repo *statsRepoStub, role string) *gin.Engine {
	handler := NewAdminHandler(repo)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(authAsRole(role), middleware.RequireAdmin())
	admin.GET("/stats", handler.GetStats)
	return router
}

func TestAdminHandler_GetStats(t *testing.T) {
	repo := &statsRepoStub{counts: map[entities.TransactionStatus]int64{
		entities.TransactionStatusPending:   3,
		entities.TransactionStatusConfirmed: 5,
		entities.TransactionStatusFailed:    1,
	}}
	router := newAdminRouter(repo, "ADMIN")

	w := performJSON(router, http.MethodGet, "/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body["totalTransactions"])
	assert.Equal(t, int64(3), body["pending"])
	assert.Equal(t, int64(5), body["confirmed"])
	assert.Equal(t, int64(1), body["failed"])
}

func TestAdminHandler_GetStats_NonAdminForbidden(t *testing.T) {
	router := newAdminRouter(&statsRepoStub{}, "USER")

	w := performJSON(router, http.MethodGet, "/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminHandler_GetStats_RepoError(t *testing.T) {
	repo := &statsRepoStub{err: errors.New("db down")}
	router := newAdminRouter(repo, "ADMIN")

	w := performJSON(router, http.MethodGet, "/admin/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
