package options

import "context"

type Options struct {
	Gen   *Gen   `command:"gen" description:"generate ApplyResources interceptors for designer files"`
	Types *Types `command:"types" description:"list resource type tags used by the project"`
}

func (o *Options) Init(ctx context.Context) error {
	if o.Gen != nil {
		return o.Gen.Init()
	}
	if o.Types != nil {
		return o.Types.Init()
	}
	return nil
}

func NewOptions(args Arguments) *Options {
	ret := &Options{}
	if len(args) == 0 {
		return ret
	}
	switch args[0] {
	case genCommand:
		ret.Gen = &Gen{}
	case typesCommand:
		ret.Types = &Types{}
	}
	return ret
}
