package schedule

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 1024

// Parsed результат разбора часов работы и перерывов одного бизнеса
type Parsed struct {
	Schedule WeeklySchedule
	Breaks   BreakSet
}

// CacheObserver получает результаты обращений к кэшу (prometheus)
type CacheObserver interface {
	ObserveCacheLookup(hit bool)
}

// Cache кэш разобранных расписаний. Ключ - сам исходный текст, поэтому
// изменение часов у бизнеса автоматически даёт промах, инвалидация не нужна
type Cache struct {
	entries  *lru.Cache[string, Parsed]
	observer CacheObserver
}

// NewCache создает кэш на size записей. size <= 0 означает размер по умолчанию
func NewCache(size int, observer CacheObserver) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	entries, err := lru.New[string, Parsed](size)
	if err != nil {
		return nil, fmt.Errorf("schedule: create cache: %w", err)
	}
	return &Cache{entries: entries, observer: observer}, nil
}

// Get возвращает разобранное расписание, разбирая текст при промахе
func (c *Cache) Get(hoursText, breakText string) Parsed {
	key := hoursText + "\x00" + breakText

	if parsed, ok := c.entries.Get(key); ok {
		c.observe(true)
		return parsed
	}
	c.observe(false)

	parsed := Parsed{
		Schedule: ParseHours(hoursText),
		Breaks:   ParseBreaks(breakText),
	}
	c.entries.Add(key, parsed)
	return parsed
}

// Len количество записей в кэше
func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) observe(hit bool) {
	if c.observer != nil {
		c.observer.ObserveCacheLookup(hit)
	}
}
