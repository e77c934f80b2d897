package modal

// Carousel is a bounded circular index over n images.
type Carousel struct {
	index  int
	length int
}

// NewCarousel returns a carousel over n images positioned at index, with
// index clamped into range.
func NewCarousel(n, index int) Carousel {
	if n < 0 {
		n = 0
	}
	c := Carousel{length: n}
	if n > 0 {
		c.index = ((index % n) + n) % n
	}
	return c
}

// Next advances to the following image, wrapping around.
func (c *Carousel) Next() {
	if c.length <= 1 {
		return
	}
	c.index = (c.index + 1) % c.length
}

// Prev moves to the previous image, wrapping around.
func (c *Carousel) Prev() {
	if c.length <= 1 {
		return
	}
	c.index = (c.index - 1 + c.length) % c.length
}

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Len returns the number of images.
func (c *Carousel) Len() int { return c.length }

// Navigable reports whether prev/next controls should be shown.
func (c *Carousel) Navigable() bool { return c.length > 1 }

// NextIndex and PrevIndex return the neighbouring positions without moving.
func (c *Carousel) NextIndex() int {
	n := *c
	n.Next()
	return n.index
}

func (c *Carousel) PrevIndex() int {
	n := *c
	n.Prev()
	return n.index
}
