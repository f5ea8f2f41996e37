package extract

// sportCarry tracks a sport cell that spans several rows of one table.
// It is either idle or carrying a sport for a number of remaining rows.
type sportCarry struct {
	sport     string
	remaining int
}

// idle reports whether no sport is being carried.
func (c *sportCarry) idle() bool {
	return c.remaining == 0
}

// take hands the carried sport to the current row and counts it down.
func (c *sportCarry) take() (string, bool) {
	if c.idle() {
		return "", false
	}
	c.remaining--
	sport := c.sport
	if c.remaining == 0 {
		c.sport = ""
	}
	return sport, true
}

// begin starts carrying sport over the span-1 rows after the current one.
// A span of 1 or less leaves the state unchanged.
func (c *sportCarry) begin(sport string, span int) {
	if span <= 1 {
		return
	}
	c.sport = sport
	c.remaining = span - 1
}
