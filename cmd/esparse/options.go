package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/esparse/js"
	"gopkg.in/yaml.v2"
)

// fileOptions are the parser options of a YAML file, keys are the camel-cased option names such as ecmaVersion.
type fileOptions struct {
	EcmaVersion                 string `yaml:"ecmaVersion"`
	SourceType                  string `yaml:"sourceType"`
	AllowReserved               string `yaml:"allowReserved"`
	AllowReturnOutsideFunction  bool   `yaml:"allowReturnOutsideFunction"`
	AllowImportExportEverywhere bool   `yaml:"allowImportExportEverywhere"`
	AllowAwaitOutsideFunction   *bool  `yaml:"allowAwaitOutsideFunction"`
	AllowSuperOutsideMethod     *bool  `yaml:"allowSuperOutsideMethod"`
	AllowHashBang               *bool  `yaml:"allowHashBang"`
	Locations                   bool   `yaml:"locations"`
	Ranges                      bool   `yaml:"ranges"`
	DirectSourceFile            string `yaml:"directSourceFile"`
	PreserveParens              bool   `yaml:"preserveParens"`
}

func toggle(b *bool) js.Toggle {
	if b == nil {
		return js.Unset
	}
	return js.Bool(*b)
}

func (f fileOptions) options() (js.Options, error) {
	opts := js.Options{
		AllowReturnOutsideFunction:  f.AllowReturnOutsideFunction,
		AllowImportExportEverywhere: f.AllowImportExportEverywhere,
		AllowAwaitOutsideFunction:   toggle(f.AllowAwaitOutsideFunction),
		AllowSuperOutsideMethod:     toggle(f.AllowSuperOutsideMethod),
		AllowHashBang:               toggle(f.AllowHashBang),
		Locations:                   f.Locations,
		Ranges:                      f.Ranges,
		DirectSourceFile:            f.DirectSourceFile,
		PreserveParens:              f.PreserveParens,
	}

	var err error
	if f.EcmaVersion != "" {
		if opts.EcmaVersion, err = js.ParseVersion(f.EcmaVersion); err != nil {
			return opts, err
		}
	}
	if f.SourceType != "" {
		if opts.SourceType, err = js.ParseSourceType(f.SourceType); err != nil {
			return opts, err
		}
	}
	if opts.AllowReserved, err = js.ParseReservedPolicy(f.AllowReserved); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadOptions reads the parser options from a YAML file.
func loadOptions(filename string) (js.Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return js.Options{}, err
	}
	f := fileOptions{}
	if err := yaml.UnmarshalStrict(b, &f); err != nil {
		return js.Options{}, errors.Wrapf(err, "config %s", filename)
	}
	opts, err := f.options()
	if err != nil {
		return js.Options{}, errors.Wrapf(err, "config %s", filename)
	}
	log.Debugf("loaded options from %s", filename)
	return opts, nil
}

// optionFlags are the parser option flags shared by the commands, flags that are set override the config file.
type optionFlags struct {
	config                      string
	ecmaVersion                 string
	module                      bool
	allowReserved               string
	allowReturnOutsideFunction  bool
	allowImportExportEverywhere bool
	allowAwaitOutsideFunction   bool
	allowHashBang               bool
	locations                   bool
	ranges                      bool
	preserveParens              bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML file with parser options")
	cmd.Flags().StringVarP(&f.ecmaVersion, "ecma", "e", "", "ECMAScript version: 3, 5, 6 to 14, 2015 to 2023 or latest")
	cmd.Flags().BoolVar(&f.module, "module", false, "Parse as a module")
	cmd.Flags().StringVar(&f.allowReserved, "allow-reserved", "", "Reserved words policy: true, false or never")
	cmd.Flags().BoolVar(&f.allowReturnOutsideFunction, "allow-return-outside-function", false, "Allow return at the top level")
	cmd.Flags().BoolVar(&f.allowImportExportEverywhere, "allow-import-export-everywhere", false, "Allow import and export outside the top level")
	cmd.Flags().BoolVar(&f.allowAwaitOutsideFunction, "allow-await-outside-function", false, "Allow await at the top level")
	cmd.Flags().BoolVar(&f.allowHashBang, "allow-hash-bang", false, "Allow a #! line at the start")
	cmd.Flags().BoolVar(&f.locations, "locations", false, "Attach line and column locations")
	cmd.Flags().BoolVar(&f.ranges, "ranges", false, "Attach offset ranges")
	cmd.Flags().BoolVar(&f.preserveParens, "preserve-parens", false, "Keep parenthesized expressions in the tree")
}

func (f *optionFlags) options(cmd *cobra.Command) (js.Options, error) {
	opts := js.Options{}
	if f.config != "" {
		var err error
		if opts, err = loadOptions(f.config); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("ecma") {
		version, err := js.ParseVersion(f.ecmaVersion)
		if err != nil {
			return opts, err
		}
		opts.EcmaVersion = version
	}
	if changed("module") {
		opts.SourceType = js.Script
		if f.module {
			opts.SourceType = js.Module
		}
	}
	if changed("allow-reserved") {
		policy, err := js.ParseReservedPolicy(f.allowReserved)
		if err != nil {
			return opts, err
		}
		opts.AllowReserved = policy
	}
	if changed("allow-return-outside-function") {
		opts.AllowReturnOutsideFunction = f.allowReturnOutsideFunction
	}
	if changed("allow-import-export-everywhere") {
		opts.AllowImportExportEverywhere = f.allowImportExportEverywhere
	}
	if changed("allow-await-outside-function") {
		opts.AllowAwaitOutsideFunction = js.Bool(f.allowAwaitOutsideFunction)
	}
	if changed("allow-hash-bang") {
		opts.AllowHashBang = js.Bool(f.allowHashBang)
	}
	if changed("locations") {
		opts.Locations = f.locations
	}
	if changed("ranges") {
		opts.Ranges = f.ranges
	}
	if changed("preserve-parens") {
		opts.PreserveParens = f.preserveParens
	}
	return opts, nil
}
