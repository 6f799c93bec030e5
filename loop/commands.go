package loop

// Commands buffers work that must run after every system of the frame has
// executed, such as drawing a debug overlay over the final state.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued commands in order and resets the buffer.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
