package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	priceCachePrefix = "cache:price:"
	priceCacheTTL    = 4 * time.Hour
)

// PriceCheckHandler serves the unauthenticated price lookup used by the
// front-desk display. Responses are cached in Redis so repeated scans of
// the same SKU never touch Postgres.
type PriceCheckHandler struct {
	itemRepo repository.ItemRepository
	rdb      *redis.Client
}

func NewPriceCheckHandler(itemRepo repository.ItemRepository, rdb *redis.Client) *PriceCheckHandler {
	return &PriceCheckHandler{itemRepo: itemRepo, rdb: rdb}
}

func (h *PriceCheckHandler) Check(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		c.JSON(http.StatusBadRequest, apierror.New("missing sku"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := priceCachePrefix + sku

	if h.rdb != nil {
		if raw, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.PriceCheckResponse
			if json.Unmarshal(raw, &cached) == nil {
				c.Header("X-Cache", "HIT")
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	item, err := h.itemRepo.FindBySKU(ctx, sku)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("unknown sku"))
		return
	}

	category := ""
	if item.Category != nil {
		category = item.Category.Name
	}
	resp := dto.PriceCheckResponse{
		Name:      item.Name,
		SKU:       item.SKU,
		SellPrice: item.SellPrice,
		Available: item.Quantity,
		Category:  category,
		IsRental:  item.IsRental,
	}

	if h.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, cacheKey, raw, priceCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("sku", sku).Msg("price cache write failed")
			}
		}
	}
	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, resp)
}

// InvalidatePriceCache drops the cached entry for a SKU. Called after item
// updates so the public endpoint never serves a stale price for long.
func InvalidatePriceCache(ctx context.Context, rdb *redis.Client, sku string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, priceCachePrefix+sku).Err(); err != nil {
		log.Warn().Err(err).Str("sku", sku).Msg("price cache invalidation failed")
	}
}
