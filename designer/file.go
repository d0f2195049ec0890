package designer

import (
	"strings"
)

const globalPrefix = "global::"

type (
	//Call represents ApplyResources call site
	Call struct {
		Line   int
		Column int
		Object string
		Owner  string
		Type   string
	}

	//File represents scanned designer source
	File struct {
		URL       string
		Namespace string
		Class     string
		Usings    []string
		Fields    map[string]string
		Calls     []*Call
		//Unresolved holds call sites whose object type could not be determined
		Unresolved []*Call
	}
)

//ClassType returns fully qualified declaring class
func (f *File) ClassType() string {
	if f.Namespace == "" {
		return globalPrefix + f.Class
	}
	return globalPrefix + f.Namespace + "." + f.Class
}

//resolve assigns object types to collected calls
func (f *File) resolve(calls []*Call) {
	for _, call := range calls {
		call.Type = f.objectType(call.Object)
		if call.Type == "" {
			f.Unresolved = append(f.Unresolved, call)
			continue
		}
		f.Calls = append(f.Calls, call)
	}
}

func (f *File) objectType(object string) string {
	if object == "this" {
		if f.Class == "" {
			return ""
		}
		return f.ClassType()
	}
	name := strings.TrimPrefix(object, "this.")
	fieldType, ok := f.Fields[name]
	if !ok {
		return ""
	}
	if strings.HasPrefix(fieldType, globalPrefix) || !strings.Contains(fieldType, ".") {
		return fieldType
	}
	return globalPrefix + fieldType
}
