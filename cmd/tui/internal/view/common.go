package view

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) resize(width, height int) {
	c.Width = width
	c.Height = height
}
