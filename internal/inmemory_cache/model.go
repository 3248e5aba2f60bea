package inmemory_cache

import (
	"sync"
	"time"
)

// основная структура inmemory cache для кэширования распарсенных JSON файлов из bd/
// Кэш - шардирован, ключ - имя файла
type InmemoryShardedCache struct {
	shards    []*Shard
	numShards int
	stopChan  chan bool
}

// структура отдельного шарда
// у него есть мапа с CacheItems и мьютекс для доступа к мапе
type Shard struct {
	Items map[string]CacheItem
	mu    sync.RWMutex
}

// структура отдельного элемента inmemory cache
type CacheItem struct {
	value   interface{}
	expTime time.Time
}
