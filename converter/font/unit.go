package font

import "github.com/pkg/errors"

const (
	graphicsUnitType = "System.Drawing.GraphicsUnit"
	fontStyleType    = "System.Drawing.FontStyle"
)

//Unit represents graphics unit member name
type Unit string

const (
	UnitDisplay    Unit = "Display"
	UnitDocument   Unit = "Document"
	UnitPoint      Unit = "Point"
	UnitInch       Unit = "Inch"
	UnitMillimeter Unit = "Millimeter"
	UnitPixel      Unit = "Pixel"
	UnitWorld      Unit = "World"
)

var units = map[string]Unit{
	"display": UnitDisplay,
	"doc":     UnitDocument,
	"pt":      UnitPoint,
	"in":      UnitInch,
	"mm":      UnitMillimeter,
	"px":      UnitPixel,
	"world":   UnitWorld,
}

//Expression returns qualified enum member
func (u Unit) Expression() string {
	return graphicsUnitType + "." + string(u)
}

//ParseUnit maps unit suffix to graphics unit
func ParseUnit(text string) (Unit, error) {
	unit, ok := units[text]
	if !ok {
		return "", errors.Wrapf(ErrUnknownGraphicsUnit, "%q", text)
	}
	return unit, nil
}
