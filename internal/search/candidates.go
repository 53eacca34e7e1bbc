package search

// MaxDisplayed is the number of candidates offered to the user for a single query.
const MaxDisplayed = 10

// Candidates is an ordered mapping of package name to latest version.
// Order reflects the relevance ranking returned by the index.
// The zero value is an empty, ready to use mapping.
type Candidates struct {
	names    []string
	versions map[string]string
}

// NewCandidates returns an empty mapping.
func NewCandidates() *Candidates {
	return &Candidates{versions: make(map[string]string)}
}

// Set records name with the given version. A name that is already present
// keeps its position and only has its version replaced.
func (c *Candidates) Set(name, version string) {
	if c.versions == nil {
		c.versions = make(map[string]string)
	}
	if _, ok := c.versions[name]; !ok {
		c.names = append(c.names, name)
	}
	c.versions[name] = version
}

// Len returns the number of entries.
func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns the package names in order.
func (c *Candidates) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Version returns the latest version recorded for name.
func (c *Candidates) Version(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.versions[name]
	return v, ok
}

// Limit returns the first n entries in their original order.
// When the mapping holds n entries or fewer, the receiver itself is returned.
func (c *Candidates) Limit(n int) *Candidates {
	if c.Len() <= n {
		return c
	}
	if n < 0 {
		n = 0
	}
	limited := NewCandidates()
	for _, name := range c.names[:n] {
		limited.Set(name, c.versions[name])
	}
	return limited
}
