// Package cache implementa la caché de reportes de ventas sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/pkg/config"
)

// KeyPrefix prefijo de las claves de reportes.
const KeyPrefix = "bookstore:sales-report:"

var _ usecase.ReportCache = (*RedisReportCache)(nil)

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar redis: %w", err)
	}
	return client, nil
}

// RedisReportCache guarda reportes serializados en JSON con TTL.
// Key: bookstore:sales-report:{id:N | name:fragmento}
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache construye la caché. ttl <= 0 deja las claves sin expiración.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

// Get devuelve el reporte cacheado. (nil, false, nil) si la clave no existe.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*report.SalesReport, bool, error) {
	raw, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var rep report.SalesReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, false, fmt.Errorf("decodificar reporte cacheado: %w", err)
	}
	if rep.Rows == nil {
		rep.Rows = []report.SaleRow{}
	}
	return &rep, true, nil
}

// Set guarda el reporte con el TTL configurado.
func (c *RedisReportCache) Set(ctx context.Context, key string, rep *report.SalesReport) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("codificar reporte: %w", err)
	}
	if err := c.client.Set(ctx, KeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
