package job

// Job is a catalog item employees book productive hours against. Entries
// reference jobs by name.
type Job struct {
	ID     string
	Code   string
	Name   string
	Active bool
}
