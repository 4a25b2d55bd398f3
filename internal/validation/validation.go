package validation

import (
	"bytes"
	"io"
	"net/http"
	"reflect"

	"github.com/duccv/go-profile-guard/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	ValidatedParams = "validatedParams"
	ValidatedQuery  = "validatedQuery"
)

var validate *validator.Validate = validator.New()

func isEmptyInterface[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t == reflect.TypeOf((*any)(nil)).Elem()
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, constant.INVALID_REQUEST.WithError(err))
}

// Validate binds and validates the JSON body, URI params and query string
// into B, P and Q. Pass `any` to skip a part. Validated values are stored in
// the context under constant.ValidatedBody, ValidatedParams and ValidatedQuery.
func Validate[B any, P any, Q any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Body ---
		if !isEmptyInterface[B]() {
			var body B

			rawData, err := io.ReadAll(c.Request.Body)
			if err != nil {
				abort(c, err)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))

			if err := c.ShouldBindJSON(&body); err != nil {
				abort(c, err)
				return
			}
			if err := validate.Struct(body); err != nil {
				abort(c, err)
				return
			}

			// Restore the body so later handlers can read it again
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))
			c.Set(constant.ValidatedBody, body)
		}

		// --- Params ---
		if !isEmptyInterface[P]() {
			var params P

			if err := c.ShouldBindUri(&params); err != nil {
				abort(c, err)
				return
			}
			if err := validate.Struct(params); err != nil {
				abort(c, err)
				return
			}
			c.Set(ValidatedParams, params)
		}

		// --- Query ---
		if !isEmptyInterface[Q]() {
			var query Q

			if err := c.ShouldBindQuery(&query); err != nil {
				abort(c, err)
				return
			}
			if err := validate.Struct(query); err != nil {
				abort(c, err)
				return
			}
			c.Set(ValidatedQuery, query)
		}

		c.Next()
	}
}

// Body returns the body stored by Validate.
func Body[B any](c *gin.Context) (B, bool) {
	v, ok := c.Get(constant.ValidatedBody)
	if !ok {
		var zero B
		return zero, false
	}
	body, ok := v.(B)
	return body, ok
}
