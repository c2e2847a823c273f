// Package storage elige e inicializa el backend de mensajes según la configuración.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"messages-api/internal/config"
	"messages-api/internal/db"
	"messages-api/internal/domain"
	"messages-api/internal/repository"
)

// Open devuelve el repositorio del backend configurado y una función para liberarlo.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.MessageRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendQuery:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("using postgres query storage")
		return repository.NewPgMessageRepository(pool), pool.Close, nil

	case config.BackendRepository:
		gdb, err := db.NewGorm(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("gorm connect: %w", err)
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					logger.Warn("closing gorm connection", zap.Error(err))
				}
			}
		}
		logger.Info("using gorm repository storage")
		crud := repository.NewGormCrudRepository[domain.Message, string](gdb, "id")
		return repository.NewCrudMessageRepository(crud), closeFn, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("closing redis client", zap.Error(err))
			}
		}
		logger.Info("using redis storage", zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisMessageRepository(client), closeFn, nil

	case config.BackendMemory, "":
		logger.Info("using in-memory storage")
		return repository.NewMemoryMessageRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
