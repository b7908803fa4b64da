package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, map[string]string{"message": "hello"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.Code)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	Created(c, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestNoContent(t *testing.T) {
	router := gin.New()
	router.DELETE("/test", func(c *gin.Context) {
		NoContent(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/test", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name    string
		send    func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"Error", func(c *gin.Context) { Error(c, http.StatusTeapot, "TEAPOT", "I'm a teapot") }, http.StatusTeapot, "TEAPOT", "I'm a teapot"},
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "invalid input") }, http.StatusBadRequest, CodeBadRequest, "invalid input"},
		{"ValidationFailed", func(c *gin.Context) { ValidationFailed(c, "userId is required") }, http.StatusBadRequest, CodeValidation, "userId is required"},
		{"Unauthorized", func(c *gin.Context) { Unauthorized(c, "not authenticated") }, http.StatusUnauthorized, CodeUnauthorized, "not authenticated"},
		{"Forbidden", func(c *gin.Context) { Forbidden(c, "access denied") }, http.StatusForbidden, CodeForbidden, "access denied"},
		{"NotFound", func(c *gin.Context) { NotFound(c, "resource not found") }, http.StatusNotFound, CodeNotFound, "resource not found"},
		{"Conflict", func(c *gin.Context) { Conflict(c, CodeTeamFull, "team is full") }, http.StatusConflict, CodeTeamFull, "team is full"},
		{"InternalError", func(c *gin.Context) { InternalError(c) }, http.StatusInternalServerError, CodeInternal, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestResponseJSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		expected string
	}{
		{
			name:     "success with data",
			response: Response{Success: true, Data: map[string]string{"key": "value"}},
			expected: `{"success":true,"data":{"key":"value"}}`,
		},
		{
			name:     "error response with code",
			response: Response{Success: false, Error: "role taken", Code: CodeRoleTaken},
			expected: `{"success":false,"error":"role taken","code":"ROLE_TAKEN"}`,
		},
		{
			name:     "success without data",
			response: Response{Success: true},
			expected: `{"success":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.response)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}
