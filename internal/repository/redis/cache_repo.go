package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует карточки продуктов в Redis.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированную карточку. Промах и битая запись — (nil, nil).
func (c *CacheRepo) GetProduct(ctx context.Context, id int64) (*domain.ProductDetails, error) {
	key := productKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := unmarshalProduct(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		c.drop(ctx, key)
		return nil, nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", id, model.ID)
		c.drop(ctx, key)
		return nil, nil
	}

	return converter.ToEntity(model), nil
}

// SetProduct кэширует карточку с TTL из конфигурации.
// Пока жива метка инвалидации, запись пропускается: карточка могла быть прочитана до изменения.
func (c *CacheRepo) SetProduct(ctx context.Context, product *domain.ProductDetails) error {
	data, err := json.Marshal(converter.ToRedisModel(product))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	marker := staleKey(product.ID)
	err = c.client.Client.Watch(ctx, func(tx *r.Tx) error {
		stale, err := tx.Exists(ctx, marker).Result()
		if err != nil {
			return err
		}
		if stale > 0 {
			c.logger.Debugf("Skip caching product %d: invalidated recently", product.ID)
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
			pipe.Set(ctx, productKey(product.ID), data, c.cfg.ProductTTL)
			return nil
		})
		return err
	}, marker)
	if errors.Is(err, r.TxFailedErr) {
		// метку поставили между WATCH и EXEC
		return nil
	}
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteProducts удаляет карточки по ID и ставит метки инвалидации на StaleTTL.
func (c *CacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := c.client.Client.TxPipelined(ctx, func(pipe r.Pipeliner) error {
		pipe.Del(ctx, productKeys(ids)...)
		for _, id := range ids {
			pipe.Set(ctx, staleKey(id), 1, c.cfg.StaleTTL)
		}
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) drop(ctx context.Context, key string) {
	if err := c.client.Client.Del(ctx, key).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func unmarshalProduct(data []byte) (*converter.ProductRedisModel, error) {
	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

func productKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	return keys
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func staleKey(id int64) string {
	return fmt.Sprintf("product:%d:stale", id)
}
