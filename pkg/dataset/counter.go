package dataset

import "fmt"

// Counter produces names of one entity kind from a monotonically
// increasing number. It is not safe for concurrent use.
type Counter struct {
	format string
	next   int
}

// NewCounter creates a Counter. The format must contain exactly one
// integer verb, for example "Plant %d".
func NewCounter(format string, start int) *Counter {
	return &Counter{format: format, next: start}
}

// Next returns the following name.
func (c *Counter) Next() string {
	res := fmt.Sprintf(c.format, c.next)
	c.next++
	return res
}

// Peek returns the number the next name will carry.
func (c *Counter) Peek() int {
	return c.next
}
