package core

// Fetch shifts the pipeline one position older and latches the current
// contents of DataBus into slot 0 (the most-recently-fetched instruction).
// Callers set DataBus to the word read from the bus immediately before
// calling Fetch.
func (c *Core) Fetch() {
	c.Pipeline[2] = c.Pipeline[1]
	c.Pipeline[1] = c.Pipeline[0]
	c.Pipeline[0] = c.DataBus
}

// FlushPipeline clears all three pipeline slots. The core has no intrinsic
// branch-invalidation logic; every control-flow redirect must call this
// before issuing its refill fetches.
func (c *Core) FlushPipeline() {
	c.Pipeline = [3]uint32{}
}
