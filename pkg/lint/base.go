package lint

// BaseCheck carries the identity shared by every check.
// Embed it in check implementations alongside a FenceState.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseCheck struct {
	id    string // Unique identifier (e.g., "RP001")
	name  string // Short kebab-case name
	title string // Report heading
	desc  string // Detailed description
}

// NewBaseCheck creates a BaseCheck with the given properties.
func NewBaseCheck(id, name, title, desc string) BaseCheck {
	return BaseCheck{
		id:    id,
		name:  name,
		title: title,
		desc:  desc,
	}
}

// ID returns the unique identifier for this check.
func (c *BaseCheck) ID() string {
	return c.id
}

// Name returns the short name of the check.
func (c *BaseCheck) Name() string {
	return c.name
}

// Title returns the report heading of the check.
func (c *BaseCheck) Title() string {
	return c.title
}

// Description returns a detailed description of what the check looks for.
func (c *BaseCheck) Description() string {
	return c.desc
}

// NewReport returns an empty report owned by this check.
func (c *BaseCheck) NewReport() *Report {
	return &Report{
		CheckID:   c.id,
		CheckName: c.name,
		Title:     c.title,
	}
}
