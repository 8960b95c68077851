package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/query"

	"github.com/gin-gonic/gin"
)

// identity returns the caller attached by the authentication stage.
func identity(c *gin.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFrom(c.Request.Context())
	if !ok {
		return domain.Identity{}, apperror.Unauthenticated("You are not signed in. Please sign in to get access.")
	}
	return id, nil
}

func listOptions(c *gin.Context) (query.Options, error) {
	opts, err := query.Parse(c.Request.URL.Query())
	if err != nil {
		return query.Options{}, apperror.BadRequest(err.Error())
	}
	return opts, nil
}

// bindJSON decodes the (already validated) body into dst.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.BadRequest("Request body could not be decoded: " + err.Error())
	}
	return nil
}

// flexInt accepts a JSON number or a numeric string, matching what the
// validation stage admits for integer fields.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = flexInt(int(f))
	return nil
}

func (n *flexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
