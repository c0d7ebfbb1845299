package entity

// CounterItem is a single key and its count
type CounterItem struct {
	Key   string
	Count int
}

// Counter counts occurrences of keys and remembers the order in which keys were first seen.
// Among keys with equal counts, the one seen first ranks first.
type Counter struct {
	items []CounterItem
	index map[string]int
}

func NewCounter() *Counter {
	return &Counter{
		index: make(map[string]int),
	}
}

func (c *Counter) Inc(key string) {
	i, ok := c.index[key]
	if !ok {
		c.index[key] = len(c.items)
		c.items = append(c.items, CounterItem{Key: key, Count: 1})
		return
	}
	c.items[i].Count++
}

func (c *Counter) Get(key string) int {
	i, ok := c.index[key]
	if !ok {
		return 0
	}
	return c.items[i].Count
}

func (c *Counter) Len() int {
	return len(c.items)
}

func (c *Counter) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Count
	}
	return total
}

// Items returns a copy of the counted keys in first-seen order
func (c *Counter) Items() []CounterItem {
	items := make([]CounterItem, len(c.items))
	copy(items, c.items)
	return items
}

// MostCommon returns the key with the highest count. Ties go to the key inserted first.
func (c *Counter) MostCommon() (CounterItem, bool) {
	if len(c.items) == 0 {
		return CounterItem{}, false
	}

	best := c.items[0]
	for _, item := range c.items[1:] {
		if item.Count > best.Count {
			best = item
		}
	}
	return best, true
}
