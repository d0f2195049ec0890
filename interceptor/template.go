package interceptor

import (
	_ "embed"
	"github.com/viant/resxgen/designer"
	"github.com/viant/resxgen/emitter"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/tagly/format/text"
	"path"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultNamespace = "ApplyResourcesSourceGen"
	AttributeFile    = "InterceptsLocationAttribute.g.cs"
	DesignerSuffix   = ".Designer.cs"
	GeneratedSuffix  = ".g.cs"
	MethodPrefix     = "ApplyResources"

	bodyIndent = "        "
	indent     = "    "
)

//go:embed tmpl/attribute.csx
var attributeTemplate string

//go:embed tmpl/file.csx
var fileTemplate string

//go:embed tmpl/method.csx
var methodTemplate string

type (
	//Site represents intercepted call site with its emitted owner block
	Site struct {
		Call  *designer.Call
		Block *emitter.Block
	}

	//Source represents interceptors generated for one designer file
	Source struct {
		//Path is the designer file location referenced by InterceptsLocation
		Path   string
		Name   string
		Usings []string
		Sites  []*Site
	}
)

//Label returns interceptor method name for 1-based call site index
func Label(index int) string {
	return MethodPrefix + strconv.Itoa(index)
}

//ClassName returns interceptor class name for designer file location
func ClassName(location string) string {
	name := strings.TrimSuffix(path.Base(strings.ReplaceAll(location, "\\", "/")), DesignerSuffix)
	name = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)
	name = strings.Trim(name, "_")
	if name == "" {
		return "Interceptors"
	}
	if strings.Contains(name, "_") {
		name = text.DetectCaseFormat(name).Format(name, text.CaseFormatUpperCamel)
	}
	if first := rune(name[0]); unicode.IsDigit(first) {
		name = "_" + name
	}
	return name + "Interceptors"
}

//Attribute returns InterceptsLocationAttribute definition source
func Attribute() string {
	return attributeTemplate
}

//Render renders interceptor class source
func Render(namespace string, source *Source) (string, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	methods := strings.Builder{}
	for i, site := range source.Sites {
		method, err := renderMethod(Label(i+1), source.Path, site)
		if err != nil {
			return "", err
		}
		methods.WriteString(method)
	}
	usings := strings.Builder{}
	for _, using := range source.Usings {
		usings.WriteString("using " + using + ";\n")
	}
	if usings.Len() > 0 {
		usings.WriteString("\n")
	}
	tmpl := strings.Replace(fileTemplate, "$Usings\n", usings.String(), 1)
	tmpl = strings.Replace(tmpl, "$Namespace", namespace, 1)
	tmpl = strings.Replace(tmpl, "$Class", ClassName(source.Name), 1)
	tmpl = strings.Replace(tmpl, "$Methods", methods.String(), 1)
	return tmpl, nil
}

func renderMethod(label string, location string, site *Site) (string, error) {
	lines, err := site.Block.Lines(indent)
	if err != nil {
		return "", err
	}
	for i, line := range lines {
		lines[i] = bodyIndent + line
	}
	tmpl := strings.Replace(methodTemplate, "$Path", ast.QuoteVerbatim(location), 1)
	tmpl = strings.Replace(tmpl, "$Line", strconv.Itoa(site.Call.Line), 1)
	tmpl = strings.Replace(tmpl, "$Column", strconv.Itoa(site.Call.Column), 1)
	tmpl = strings.Replace(tmpl, "$Method", label, 1)
	tmpl = strings.Replace(tmpl, "$Type", site.Call.Type, 1)
	if len(lines) == 0 {
		return strings.Replace(tmpl, "$Body\n", "", 1), nil
	}
	return strings.Replace(tmpl, "$Body", strings.Join(lines, "\n"), 1), nil
}
