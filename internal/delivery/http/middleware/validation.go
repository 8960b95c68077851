package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes bounds how much of a request body the validation stage reads.
const maxBodyBytes = 1 << 20

// Validate checks every facet constrained by set and fails with a single
// ValidationError listing all violations. The body is restored so that the
// handler can bind it again.
func Validate(v *validation.Validator, set validation.Set) Stage {
	return func(c *gin.Context) error {
		in := validation.Input{
			Headers: headerFacet(c),
			Params:  paramFacet(c),
			Query:   queryFacet(c),
		}
		if set.Body != nil {
			in.Body, in.BodyErr = bodyFacet(c)
		}

		if violations := v.Validate(set, in); len(violations) > 0 {
			return apperror.Validation(violations)
		}
		return nil
	}
}

func headerFacet(c *gin.Context) map[string]any {
	out := make(map[string]any, len(c.Request.Header))
	for k, vs := range c.Request.Header {
		if len(vs) > 0 {
			out[strings.ToLower(k)] = vs[0]
		}
	}
	return out
}

func paramFacet(c *gin.Context) map[string]any {
	out := make(map[string]any, len(c.Params))
	for _, p := range c.Params {
		out[p.Key] = p.Value
	}
	return out
}

func queryFacet(c *gin.Context) map[string]any {
	values := c.Request.URL.Query()
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// bodyFacet decodes the body as a JSON object. An empty body counts as an
// empty object so that missing fields are reported one by one.
func bodyFacet(c *gin.Context) (map[string]any, error) {
	if c.Request.Body == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(raw) > maxBodyBytes {
		return nil, errors.New("body too large")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errors.New("body is not a JSON object")
	}
	return body, nil
}
