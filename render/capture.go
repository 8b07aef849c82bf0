package render

// Capture records every frame it is handed. It is the renderer used by
// tests, playing the role the live surface plays in production.
type Capture struct {
	W, H    int
	Frames  []Frame
	Started bool
	Stopped bool
}

// NewCapture builds a capture surface with a fixed reported size.
func NewCapture(width, height int) *Capture {
	return &Capture{W: width, H: height}
}

func (c *Capture) Start(f Frame) error {
	c.Started = true
	c.Frames = append(c.Frames, f)
	return nil
}

func (c *Capture) Update(f Frame) {
	c.Frames = append(c.Frames, f)
}

func (c *Capture) Stop() {
	c.Stopped = true
}

func (c *Capture) Size() (int, int) {
	w, h := c.W, c.H
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// Last returns the most recent frame, or a zero frame if none were
// painted.
func (c *Capture) Last() Frame {
	if len(c.Frames) == 0 {
		return Frame{}
	}
	return c.Frames[len(c.Frames)-1]
}
