package cmd

import (
	"context"
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/viant/resxgen/cmd/command"
	soptions "github.com/viant/resxgen/cmd/options"
)

//RunApp runs command line application
func RunApp(version string, args soptions.Arguments) error {
	return New(version, args)
}

func New(version string, args soptions.Arguments) error {
	if args.IsVersion() && !args.SubMode() {
		fmt.Printf("resxgen: version: %v\n", version)
		return nil
	}
	options, err := buildOptions(args.Normalize())
	if err != nil {
		return err
	}
	if options == nil {
		return nil
	}
	if err := options.Init(context.Background()); err != nil {
		return err
	}
	cmd := command.New()
	return cmd.Exec(context.Background(), options)
}

func buildOptions(args soptions.Arguments) (*soptions.Options, error) {
	opts := soptions.NewOptions(args)
	if _, err := flags.ParseArgs(opts, args); err != nil {
		if args.IsHelp() {
			return nil, nil
		}
		return nil, err
	}
	return opts, nil
}
