package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"opportunity-team/internal/models"
	"opportunity-team/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHandler_ListRoles(t *testing.T) {
	t.Run("returns catalog in order", func(t *testing.T) {
		mockService := &mocks.MockRoleService{
			ListRolesFunc: func(ctx context.Context) (*models.RoleListResponse, error) {
				return &models.RoleListResponse{Items: []models.Role{
					{Label: "Sales Rep", Value: "Sales Rep"},
					{Label: "Sales Engineer", Value: "Sales Engineer"},
				}}, nil
			},
		}

		router := gin.New()
		router.GET("/team-roles", NewRoleHandler(mockService).ListRoles)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team-roles", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		items := decodeBody(t, w)["data"].(map[string]interface{})["items"].([]interface{})
		require.Len(t, items, 2)
		assert.Equal(t, "Sales Rep", items[0].(map[string]interface{})["value"])
		assert.Equal(t, "Sales Engineer", items[1].(map[string]interface{})["value"])
	})

	t.Run("internal server error", func(t *testing.T) {
		mockService := &mocks.MockRoleService{
			ListRolesFunc: func(ctx context.Context) (*models.RoleListResponse, error) {
				return nil, errors.New("database error")
			},
		}

		router := gin.New()
		router.GET("/team-roles", NewRoleHandler(mockService).ListRoles)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team-roles", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
