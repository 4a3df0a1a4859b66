package product_controller

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	catalog_cache "github.com/rohit7nkuamr/westend-Corporation-sub000/cache"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/services"
)

// ─────────────────────────────────────────────────────────────
// Package wiring
// ─────────────────────────────────────────────────────────────

var upstream *services.UpstreamClient

// Init wires the upstream client. Called once from main.
func Init(client *services.UpstreamClient) {
	upstream = client
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// loadSnapshot returns the cached products + verticals, fetching both
// from upstream in parallel on a cache miss.
func loadSnapshot(ctx context.Context) ([]models.Product, []models.Vertical, error) {
	if products, verticals, ok := catalog_cache.GetSnapshot(); ok {
		return products, verticals, nil
	}

	var (
		products  []models.Product
		verticals []models.Vertical
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = upstream.ListProducts(gctx, services.ProductListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		verticals, err = upstream.ListVerticals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Resolve vertical titles so category filtering works on names.
	titles := make(map[int]string, len(verticals))
	for _, v := range verticals {
		titles[v.ID] = v.Title
	}
	for i := range products {
		if products[i].VerticalName == "" {
			products[i].VerticalName = titles[products[i].Vertical]
		}
	}

	catalog_cache.SetSnapshot(products, verticals)
	return products, verticals, nil
}
