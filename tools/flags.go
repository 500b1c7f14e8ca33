/*
Copyright 2023 by Milo Christiansen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package tools

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Flags holds the converter's command line options.
type Flags struct {
	OutFile string // Output filename override.
	Dir     string // Output directory.
	Convert bool   // Write amounts with a decimal dot instead of a comma.
	Layout  string // Input layout: "2018" or "legacy".
	Config  string // Account registry config path.
	Version bool
	Quiet   bool

	Flags *flag.FlagSet
}

// ConverterFlagSet returns the converter's flag set. Most options come in a
// short and a long form.
func ConverterFlagSet(usage string) *Flags {
	fs := &Flags{
		Config: DefaultConfigPath(),
		Flags:  flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}

	fs.Flags.StringVar(&fs.OutFile, "o", "", "Output `filename`, default derived from the input name.")
	fs.Flags.StringVar(&fs.OutFile, "outfile", "", "Output `filename`, default derived from the input name.")
	fs.Flags.StringVar(&fs.Dir, "d", "ofx", "`Directory` to store output, created if absent.")
	fs.Flags.StringVar(&fs.Dir, "directory", "ofx", "`Directory` to store output, created if absent.")
	fs.Flags.BoolVar(&fs.Convert, "c", false, "Convert the decimal separator to dots (.).")
	fs.Flags.BoolVar(&fs.Convert, "convert", false, "Convert the decimal separator to dots (.).")
	fs.Flags.StringVar(&fs.Layout, "layout", "2018", "Input `layout`: 2018 or legacy.")
	fs.Flags.StringVar(&fs.Config, "config", fs.Config, "Account registry config file `path`.")
	fs.Flags.BoolVar(&fs.Version, "v", false, "Print the version and exit.")
	fs.Flags.BoolVar(&fs.Version, "version", false, "Print the version and exit.")
	fs.Flags.BoolVar(&fs.Quiet, "q", false, "Only log errors.")

	fs.Flags.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.Flags.PrintDefaults()
	}

	return fs
}

// DefaultConfigPath is the registry config location used when -config is not
// given: rabo2ofx.yaml in the user's config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rabo2ofx.yaml"
	}
	return filepath.Join(dir, "rabo2ofx.yaml")
}

func (fs *Flags) Parse() {
	fs.Flags.Parse(os.Args[1:])
}
