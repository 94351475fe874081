package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Error("Get() on empty cache returned ok")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = (%d, %v), want (2, true)", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[rune, int](3)
	c.Set('a', 1)
	c.Set('b', 2)
	c.Set('c', 3)
	c.Get('a') // b is now the oldest
	c.Set('d', 4)

	if _, ok := c.Get('b'); ok {
		t.Error("b survived eviction")
	}
	for _, k := range []rune{'a', 'c', 'd'} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%c was evicted", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 {
		t.Errorf("Stats() = %+v, want 1 eviction and 3 entries", s)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](10)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}
	for i := 0; i < 3; i++ {
		if got := c.GetOrCreate(7, create); got != "v" {
			t.Errorf("GetOrCreate() = %q, want v", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 2 and 1", s.Hits, s.Misses)
	}
	if got := s.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", got)
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 5; i++ {
		c.Set(i, i)
	}
	if !c.Delete(2) || c.Delete(2) {
		t.Error("Delete() did not report presence correctly")
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
	c.Set(9, 9)
	if v, ok := c.Get(9); !ok || v != 9 {
		t.Error("cache unusable after Clear()")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int](8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := i % 16
				if v := c.GetOrCreate(k, func() int { return k * 2 }); v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("Len() = %d exceeds limit 8", c.Len())
	}
}

func BenchmarkGetOrCreate(b *testing.B) {
	c := New[string, int](64)
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(keys[i%len(keys)], func() int { return i })
	}
}
