package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// Users implements ports.UserAPI.
type Users struct {
	c *Client
}

func NewUsers(c *Client) *Users {
	return &Users{c: c}
}

func (u *Users) Get(ctx context.Context, id domain.ID) (*domain.User, error) {
	data, err := u.c.do(ctx, "users", http.MethodGet, "/users/"+url.PathEscape(id.String()), "", nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[domain.User](data)
}
