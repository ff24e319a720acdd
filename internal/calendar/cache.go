package calendar

import (
	"strconv"
	"sync"

	"absence-calendar-bot/internal/models"

	"github.com/cespare/xxhash/v2"
)

// GroupingCache запоминает результат GroupBySurname для последнего набора записей.
// Пересчет происходит только при изменении содержимого списка.
type GroupingCache struct {
	mu       sync.Mutex
	key      uint64
	grouping *Grouping
	hits     int
	misses   int
}

func NewGroupingCache() *GroupingCache {
	return &GroupingCache{}
}

// Get возвращает группировку для absences, пересчитывая ее при новом содержимом.
// Результат общий для всех вызывающих и не должен изменяться.
func (c *GroupingCache) Get(absences []models.Absence) *Grouping {
	key := ContentKey(absences)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.grouping != nil && c.key == key {
		c.hits++
		return c.grouping
	}

	c.misses++
	c.key = key
	c.grouping = GroupBySurname(absences)
	return c.grouping
}

// Invalidate сбрасывает запомненный результат
func (c *GroupingCache) Invalidate() {
	c.mu.Lock()
	c.grouping = nil
	c.mu.Unlock()
}

// Stats возвращает количество попаданий и промахов
func (c *GroupingCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// ContentKey - хеш содержимого списка отсутствий с учетом порядка
func ContentKey(absences []models.Absence) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, a := range absences {
		buf = buf[:0]
		buf = strconv.AppendUint(buf, uint64(a.ID), 10)
		buf = append(buf, 0)
		buf = append(buf, a.PersonName...)
		buf = append(buf, 0)
		buf = append(buf, string(a.Type)...)
		buf = append(buf, 0)
		buf = append(buf, a.StartDate...)
		buf = append(buf, 0)
		buf = append(buf, a.EndDate...)
		buf = append(buf, 0x1e)
		d.Write(buf)
	}
	return d.Sum64()
}
