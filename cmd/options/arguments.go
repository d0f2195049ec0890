package options

const (
	genCommand   = "gen"
	typesCommand = "types"
)

//Arguments represents command line arguments
type Arguments []string

//SubMode returns true if the first argument names a command
func (a Arguments) SubMode() bool {
	if len(a) == 0 {
		return false
	}
	switch a[0] {
	case genCommand, typesCommand:
		return true
	}
	return false
}

func (a Arguments) IsHelp() bool {
	for _, arg := range a {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func (a Arguments) IsVersion() bool {
	for _, arg := range a {
		switch arg {
		case "-v", "--version":
			return true
		}
	}
	return false
}

//Normalize defaults to gen command when no command was given
func (a Arguments) Normalize() Arguments {
	if a.SubMode() || a.IsVersion() {
		return a
	}
	return append(Arguments{genCommand}, a...)
}
