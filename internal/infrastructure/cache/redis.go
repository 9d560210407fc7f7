package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"ui-locator/internal/domain/entity"
	"ui-locator/internal/domain/port"
)

const keyPrefix = "ui-locator:annotation:"

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// RedisCache кэш разметки в Redis, общий для нескольких экземпляров сервиса
type RedisCache struct {
	client *redis.Client
	log    *logrus.Logger
}

// NewRedisCache подключается к Redis и проверяет соединение
func NewRedisCache(ctx context.Context, opts RedisOptions, log *logrus.Logger) (*RedisCache, error) {
	log.Infof("Connecting to Redis at %s...", opts.Address)

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("Successfully connected to Redis")

	return &RedisCache{client: client, log: log}, nil
}

// Get читает разметку по ключу; отсутствие ключа не считается ошибкой
func (c *RedisCache) Get(ctx context.Context, key string) (*entity.Annotation, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debugf("Annotation cache miss for key %s", key)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get annotation %s: %w", key, err)
	}

	annotation, err := decodeAnnotation(raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode annotation %s: %w", key, err)
	}
	return annotation, true, nil
}

// Set пишет разметку с TTL; ttl <= 0 означает хранение без срока
func (c *RedisCache) Set(ctx context.Context, key string, annotation *entity.Annotation, ttl time.Duration) error {
	raw, err := encodeAnnotation(annotation)
	if err != nil {
		return fmt.Errorf("encode annotation %s: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set annotation %s: %w", key, err)
	}
	return nil
}

// Close закрывает соединение
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func encodeAnnotation(annotation *entity.Annotation) ([]byte, error) {
	return jsoniter.Marshal(annotation)
}

func decodeAnnotation(raw []byte) (*entity.Annotation, error) {
	var annotation entity.Annotation
	if err := jsoniter.Unmarshal(raw, &annotation); err != nil {
		return nil, err
	}
	return &annotation, nil
}

// Проверка реализации интерфейса
var _ port.ResultCache = (*RedisCache)(nil)
