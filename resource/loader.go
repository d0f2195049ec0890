package resource

import (
	"bytes"
	"context"
	"encoding/xml"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"io"
	"strings"
)

const (
	dataElement  = "data"
	valueElement = "value"
	nameAttr     = "name"
	typeAttr     = "type"
)

//Loader loads resource catalogs
type Loader struct {
	fs afs.Service
}

//Load loads catalog from supplied URL
func (l *Loader) Load(ctx context.Context, URL string) (*Catalog, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load resource: %v", URL)
	}
	return Parse(URL, bytes.NewReader(data))
}

//Exists returns true if catalog URL exists
func (l *Loader) Exists(ctx context.Context, URL string) bool {
	ok, _ := l.fs.Exists(ctx, URL)
	return ok
}

//Parse reads resx container into a catalog
func Parse(URL string, reader io.Reader) (*Catalog, error) {
	catalog := NewCatalog(URL)
	decoder := xml.NewDecoder(reader)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read resource: %v", URL)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != dataElement {
			continue
		}
		name := attribute(start, nameAttr)
		owner, property, ok := SplitName(name)
		if !ok {
			continue
		}
		value, found, err := readValue(decoder)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read resource %v: %v", URL, name)
		}
		if !found {
			return nil, errors.Errorf("invalid resource %v: data %v has no value", URL, name)
		}
		catalog.Add(&Entry{Owner: owner, Property: property, Type: attribute(start, typeAttr), Value: value})
	}
	return catalog, nil
}

//readValue reads data element content up to its end, returning the first value element text
func readValue(decoder *xml.Decoder) (string, bool, error) {
	depth := 1
	found := false
	inValue := false
	text := strings.Builder{}
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", false, err
		}
		switch actual := token.(type) {
		case xml.StartElement:
			depth++
			if !found && actual.Name.Local == valueElement {
				found = true
				inValue = true
			}
		case xml.EndElement:
			depth--
			if inValue && actual.Name.Local == valueElement {
				inValue = false
			}
		case xml.CharData:
			if inValue {
				text.Write(actual)
			}
		}
	}
	return text.String(), found, nil
}

func attribute(element xml.StartElement, name string) string {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func NewLoader(fs afs.Service) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	return &Loader{fs: fs}
}
