// Package catalog contains the schema and loader for the code-relay
// project catalog (available_projects.json)
package catalog

// Entry is the metadata record of one cataloged repository
type Entry struct {
	// Name is the unique identifier of the entry within the catalog
	Name string `json:"name"`
	// Git is the clone location of the repository
	Git string `json:"git"`
	// Desc is a human readable description
	Desc string `json:"desc"`
	// Languages are the language tags of the repository (eg. "python")
	Languages []string `json:"languages"`
	// Frameworks are the framework tags. May be empty
	Frameworks []string `json:"frameworks"`
	// Task is the recommended work item for this repository
	Task Task `json:"task"`
	// Setup are the shell steps to prepare the repository, in the
	// order the catalog lists them
	Setup Setup `json:"setup"`
}

// Task is the single recommended work item attached to an entry
type Task struct {
	Desc string `json:"desc"`
	// File is a path relative to a checkout of the entry's repository.
	// It is not checked for existence here
	File string `json:"file"`
}

// Catalog is an ordered, read-only collection of validated entries
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// Entries returns all entries in their original catalog order
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Find returns the entry with the given name (exact match)
func (c *Catalog) Find(name string) (*Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}
