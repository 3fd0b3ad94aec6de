package ui

// modelContext implements the input Context interface for the model
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentPage() int {
	return c.m.nav.CurrentPage()
}

func (c *modelContext) TotalPages() int {
	return c.m.nav.TotalPages()
}

func (c *modelContext) DocumentReady() bool {
	return c.m.phase == docLoaded
}

func (c *modelContext) DocumentFailed() bool {
	return c.m.phase == docFailed
}
