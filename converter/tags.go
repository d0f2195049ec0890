package converter

const (
	fontType         = "System.Drawing.Font"
	memoryStreamType = "System.IO.MemoryStream"

	booleanMscorlib = "System.Boolean, mscorlib"
	booleanCoreLib  = "System.Boolean, System.Private.CoreLib"

	TableLayoutSettingsTag = "System.Windows.Forms.TableLayoutSettings, System.Windows.Forms"
	FontTag                = "System.Drawing.Font, System.Drawing"
	NullRefTag             = "System.Resources.ResXNullRef, System.Windows.Forms"
)

const (
	propertyText        = "Text"
	propertyLocalizable = "Localizable"
	managerVariable     = "manager"
)

//designer only properties used by non visual components
var designerProperties = map[string]bool{
	"TrayLocation": true,
	"TrayHeight":   true,
}

var simpleEnums = []string{
	"System.Windows.Forms.DockStyle",
	"System.Windows.Forms.AutoSizeMode",
	"System.Windows.Forms.ImeMode",
	"System.Windows.Forms.FormStartPosition",
	"System.Windows.Forms.FlowDirection",
	"System.Windows.Forms.PictureBoxSizeMode",
	"System.Windows.Forms.ScrollBars",
	"System.Windows.Forms.ImageLayout",
	"System.Windows.Forms.Orientation",
	"System.Windows.Forms.RightToLeft",
}

//builtInConverters returns default tag table
func builtInConverters() map[string]Converter {
	result := map[string]Converter{
		NullRefTag:                             Null{},
		"System.Int32, mscorlib":               Passthrough{},
		"System.Int32, System.Private.CoreLib": Passthrough{},
		booleanMscorlib:                        Boolean{},
		booleanCoreLib:                         Boolean{},
		"System.Char, mscorlib":                Char{},
		"System.Char, System.Private.CoreLib":  Char{},

		"System.Drawing.Point, System.Drawing":            &Constructor{Type: "System.Drawing.Point"},
		"System.Drawing.Point, System.Drawing.Primitives": &Constructor{Type: "System.Drawing.Point"},
		"System.Drawing.Size, System.Drawing":             &Constructor{Type: "System.Drawing.Size"},
		"System.Drawing.Size, System.Drawing.Primitives":  &Constructor{Type: "System.Drawing.Size"},
		"System.Drawing.SizeF, System.Drawing":            &FloatPair{Type: "System.Drawing.SizeF"},
		"System.Drawing.SizeF, System.Drawing.Primitives": &FloatPair{Type: "System.Drawing.SizeF"},

		"System.Windows.Forms.Padding, System.Windows.Forms":            &Constructor{Type: "System.Windows.Forms.Padding"},
		"System.Windows.Forms.Padding, System.Windows.Forms.Primitives": &Constructor{Type: "System.Windows.Forms.Padding"},
		"System.Windows.Forms.LinkArea, System.Windows.Forms":           &Constructor{Type: "System.Windows.Forms.LinkArea"},

		"System.Drawing.ContentAlignment, System.Drawing":        &Enum{Type: "System.Drawing.ContentAlignment"},
		"System.Drawing.ContentAlignment, System.Drawing.Common": &Enum{Type: "System.Drawing.ContentAlignment"},

		"System.Windows.Forms.AnchorStyles, System.Windows.Forms": &Flags{Type: "System.Windows.Forms.AnchorStyles", Separator: ", "},
		"System.Windows.Forms.Keys, System.Windows.Forms":         Keys{},

		TableLayoutSettingsTag:                  TableLayout{},
		FontTag:                                 Font{},
		"System.Drawing.Bitmap, System.Drawing": &Binary{Type: "System.Drawing.Bitmap"},
		"System.Drawing.Icon, System.Drawing":   &Binary{Type: "System.Drawing.Icon"},
	}
	for _, enumType := range simpleEnums {
		result[enumType+", System.Windows.Forms"] = &Enum{Type: enumType}
	}
	return result
}
