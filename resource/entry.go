package resource

import "strings"

const (
	//ReservedPrefix marks designer metadata entries
	ReservedPrefix = ">>"
	//Separator separates owner and property in a data name
	Separator = "."
)

type (
	//Entry represents a single resource record
	Entry struct {
		Owner    string
		Property string
		Type     string
		Value    string
	}

	//Properties represents owner properties in first seen order
	Properties struct {
		Items []*Entry
		index map[string]int
	}
)

//Name returns original composite key
func (e *Entry) Name() string {
	return e.Owner + Separator + e.Property
}

//HasType returns true if entry carries a type tag
func (e *Entry) HasType() bool {
	return strings.TrimSpace(e.Type) != ""
}

//SplitName splits data name into owner and property, ok is false for reserved or unqualified names
func SplitName(name string) (owner, property string, ok bool) {
	if strings.HasPrefix(name, ReservedPrefix) {
		return "", "", false
	}
	index := strings.Index(name, Separator)
	if index <= 0 {
		return "", "", false
	}
	return name[:index], name[index+1:], true
}

//Put adds or replaces entry, replaced entry keeps its original position
func (p *Properties) Put(entry *Entry) {
	if p.index == nil {
		p.index = map[string]int{}
	}
	if pos, ok := p.index[entry.Property]; ok {
		p.Items[pos] = entry
		return
	}
	p.index[entry.Property] = len(p.Items)
	p.Items = append(p.Items, entry)
}

//Lookup returns entry for supplied property
func (p *Properties) Lookup(property string) *Entry {
	if pos, ok := p.index[property]; ok {
		return p.Items[pos]
	}
	return nil
}

func (p *Properties) Len() int {
	return len(p.Items)
}
