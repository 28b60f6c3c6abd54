package rediscache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/rediscache"
)

func newCache(t *testing.T, ttl time.Duration) (*rediscache.AlertsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return rediscache.NewAlertsCache(client, ttl), mr
}

func sampleResponse() *dto.LowStockAlertsResponse {
	days := 3
	return &dto.LowStockAlertsResponse{
		Alerts: []dto.LowStockAlertDTO{{
			ProductID:         "prod-1",
			ProductName:       "Café de origen 500g",
			SKU:               "CAFE-500G",
			WarehouseID:       "wh-1",
			WarehouseName:     "Bodega Norte",
			CurrentStock:      3,
			Threshold:         10,
			DaysUntilStockout: &days,
			Supplier: dto.AlertSupplierDTO{
				ID: "sup-1", Name: "Proveedor", ContactEmail: "v@p.co",
			},
		}},
		TotalAlerts: 1,
	}
}

func TestAlertsCache_MissDevuelveNilNil(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	got, err := cache.Get(context.Background(), "empresa-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAlertsCache_SetLuegoGetRoundTrip(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "empresa-1", sampleResponse()))

	got, err := cache.Get(ctx, "empresa-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TotalAlerts)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "CAFE-500G", got.Alerts[0].SKU)
	require.NotNil(t, got.Alerts[0].DaysUntilStockout)
	assert.Equal(t, 3, *got.Alerts[0].DaysUntilStockout)
}

func TestAlertsCache_EntradasPorEmpresaSonIndependientes(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "empresa-1", sampleResponse()))

	got, err := cache.Get(ctx, "empresa-2")
	require.NoError(t, err)
	assert.Nil(t, got, "el cache de una empresa no debe filtrarse a otra")
}

func TestAlertsCache_ExpiraConElTTL(t *testing.T) {
	cache, mr := newCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "empresa-1", sampleResponse()))

	// miniredis avanza el reloj sin esperas reales.
	mr.FastForward(31 * time.Second)

	got, err := cache.Get(ctx, "empresa-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAlertsCache_PayloadCorruptoEsMiss(t *testing.T) {
	cache, mr := newCache(t, time.Minute)

	require.NoError(t, mr.Set("alerts:lowstock:empresa-1", "{esto no es json"))

	got, err := cache.Get(context.Background(), "empresa-1")
	require.NoError(t, err, "un payload corrupto se degrada a miss, no a error")
	assert.Nil(t, got)
}
