package backend

import (
	"context"
	"net/http"

	"github.com/rateorant/client-gateway/internal/core/domain"
)

// Categories implements ports.CategoryAPI. No auth required.
type Categories struct {
	c *Client
}

func NewCategories(c *Client) *Categories {
	return &Categories{c: c}
}

func (g *Categories) List(ctx context.Context) ([]domain.Category, error) {
	data, err := g.c.do(ctx, "categories", http.MethodGet, "/categories", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Category](data, "categories")
}
