package inmemory_cache

import (
	"fmt"
	"hash/fnv"
	"time"
)

// конструктор для создания кэша с указанным количеством шардов и интервалом очистки кэша
func NewInmemoryShardedCache(numShards int, cleanUpInterval time.Duration) (*InmemoryShardedCache, error) {
	// Валидация входных параметров
	if numShards <= 0 {
		return nil, fmt.Errorf("numShards must be positive, got %d", numShards)
	}
	if cleanUpInterval < 0 {
		return nil, fmt.Errorf("cleanUpInterval must be non-negative, got %v", cleanUpInterval)
	}

	// инициализируем базовую структуру кэша
	cache := &InmemoryShardedCache{
		shards:    make([]*Shard, numShards),
		numShards: numShards,
		stopChan:  make(chan bool),
	}

	// для каждого шарда инициализируем внутреннюю мапу
	for i := 0; i < numShards; i++ {
		cache.shards[i] = &Shard{
			Items: map[string]CacheItem{},
		}
	}

	// асинхронно запускаем очистку кэша, только если интервал > 0
	if cleanUpInterval > 0 {
		go cache.cleanUp(cleanUpInterval)
	}

	return cache, nil
}

// метод, чтобы находить нужный шард по заданному ключу
func (c *InmemoryShardedCache) getShard(key string) *Shard {
	hashf := fnv.New32a()
	// Write у fnv ошибок не возвращает
	hashf.Write([]byte(key))
	shardIndex := int(hashf.Sum32()) % c.numShards
	return c.shards[shardIndex]
}

// метод получения значения из кэша по заданному ключу
// результатом будет значение и флаг наличия
func (c *InmemoryShardedCache) GetItem(key string) (interface{}, bool) {
	shard := c.getShard(key)
	now := time.Now()

	// лочимся на чтение, так как читаем из мапы
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	val, ok := shard.Items[key]
	if !ok {
		return nil, false
	}
	// проверяем, не истёк ли TTL у значения
	if now.After(val.expTime) {
		return nil, false
	}

	return val.value, true
}

// метод, чтобы записать значение в кэш с заданным TTL
func (c *InmemoryShardedCache) AddItemWithTTL(key string, value interface{}, ttl time.Duration) {
	shard := c.getShard(key)
	now := time.Now()

	// берём лок на запись, так как обращаемся к мапе
	shard.mu.Lock()
	defer shard.mu.Unlock()

	shard.Items[key] = CacheItem{
		value:   value,
		expTime: now.Add(ttl),
	}
}

// метод удаления элемента из кэша по ключу
func (c *InmemoryShardedCache) DeleteItem(key string) {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	delete(shard.Items, key)
}

// фоновая очистка протухших элементов
func (c *InmemoryShardedCache) cleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			now := time.Now()
			for _, shard := range c.shards {
				shard.mu.Lock()
				for key, item := range shard.Items {
					if now.After(item.expTime) {
						delete(shard.Items, key)
					}
				}
				shard.mu.Unlock()
			}
		}
	}
}

// остановка фоновой очистки
func (c *InmemoryShardedCache) Stop() {
	close(c.stopChan)
}
