package resource

type (
	//Owner represents a named object with its resource properties
	Owner struct {
		Name       string
		Properties Properties
	}

	//Catalog represents resource entries grouped by owner in first seen order
	Catalog struct {
		URL    string
		Owners []*Owner
		index  map[string]int
	}
)

//Add adds entry to the catalog, the later entry for the same owner and property wins
func (c *Catalog) Add(entry *Entry) {
	owner := c.ensureOwner(entry.Owner)
	owner.Properties.Put(entry)
}

func (c *Catalog) ensureOwner(name string) *Owner {
	if c.index == nil {
		c.index = map[string]int{}
	}
	if pos, ok := c.index[name]; ok {
		return c.Owners[pos]
	}
	owner := &Owner{Name: name}
	c.index[name] = len(c.Owners)
	c.Owners = append(c.Owners, owner)
	return owner
}

//Lookup returns owner for supplied name
func (c *Catalog) Lookup(name string) *Owner {
	if pos, ok := c.index[name]; ok {
		return c.Owners[pos]
	}
	return nil
}

//Types returns distinct type tags in first seen order
func (c *Catalog) Types() []string {
	var result []string
	seen := map[string]bool{}
	for _, owner := range c.Owners {
		for _, entry := range owner.Properties.Items {
			if !entry.HasType() || seen[entry.Type] {
				continue
			}
			seen[entry.Type] = true
			result = append(result, entry.Type)
		}
	}
	return result
}

//Len returns number of entries
func (c *Catalog) Len() int {
	result := 0
	for _, owner := range c.Owners {
		result += owner.Properties.Len()
	}
	return result
}

func NewCatalog(URL string) *Catalog {
	return &Catalog{URL: URL, index: map[string]int{}}
}
