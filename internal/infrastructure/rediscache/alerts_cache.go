// Package rediscache implementa el cache de respuestas del motor de alertas
// sobre Redis. TTL corto: las alertas toleran unos segundos de desfase y el
// cálculo (join de 4 tablas + agregado de ventas) no es gratis bajo carga.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
)

var _ inventory.AlertsCache = (*AlertsCache)(nil)

const keyPrefix = "alerts:lowstock:"

// AlertsCache adaptador Redis para inventory.AlertsCache.
type AlertsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAlertsCache construye el cache con el cliente y TTL indicados.
func NewAlertsCache(client *redis.Client, ttl time.Duration) *AlertsCache {
	return &AlertsCache{client: client, ttl: ttl}
}

// Get devuelve la respuesta cacheada de la empresa, o (nil, nil) en cache miss.
func (c *AlertsCache) Get(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	raw, err := c.client.Get(ctx, keyPrefix+companyID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var resp dto.LowStockAlertsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// Payload corrupto: tratarlo como miss, se sobreescribirá en el Set.
		return nil, nil
	}
	return &resp, nil
}

// Set guarda la respuesta de la empresa con el TTL configurado.
func (c *AlertsCache) Set(ctx context.Context, companyID string, resp *dto.LowStockAlertsResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+companyID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
