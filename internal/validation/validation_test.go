package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type testBody struct {
	Value *string `json:"value" validate:"required"`
	Max   *int    `json:"max"   validate:"omitempty,min=0"`
}

type testQuery struct {
	Page int `form:"page" validate:"min=1"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.POST("/items", Validate[testBody, any, testQuery](), func(c *gin.Context) {
		body, ok := Body[testBody](c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, *body.Value)
	})
	return r
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{name: "valid", query: "?page=1", body: `{"value":"x","max":2}`, status: http.StatusOK},
		{name: "missing required", query: "?page=1", body: `{"max":2}`, status: http.StatusBadRequest},
		{name: "negative max", query: "?page=1", body: `{"value":"x","max":-1}`, status: http.StatusBadRequest},
		{name: "malformed json", query: "?page=1", body: `{`, status: http.StatusBadRequest},
		{name: "invalid query", query: "?page=0", body: `{"value":"x"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/items"+tt.query, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
