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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/milochristiansen/rabo2ofx"
)

// LoadRegistry loads the account registry from the given config path. A
// missing file yields an empty registry. On any other error the message is
// logged to standard error and the program exits with code 1.
func LoadRegistry(path string) *rabo2ofx.AccountRegistry {
	return HandleErrV(rabo2ofx.LoadAccountRegistry(path))
}

// WriteDocumentFile writes the OFX document for the statements to path, all
// or nothing: output goes to a temp file next to the final path and is
// renamed over it only after every block wrote cleanly. A failed run leaves
// no partial file behind.
func WriteDocumentFile(path string, stmts []rabo2ofx.Statement) error {
	tmp := path + "." + <-rabo2ofx.IDService + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}

	dw := &rabo2ofx.DocumentWriter{W: f}
	err = dw.WriteDocument(stmts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "writing output file")
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "placing output file")
	}
	return nil
}

// EnsureDir creates the output directory if it does not exist yet.
func EnsureDir(dir string) error {
	return errors.Wrap(os.MkdirAll(dir, 0777), "creating output directory")
}

// OutputPath derives the output file path. An empty override means the
// original tool's rule: lowercase the input base name and replace "csv"
// with "ofx".
func OutputPath(dir, csvPath, override string) string {
	name := override
	if name == "" {
		name = strings.ReplaceAll(strings.ToLower(filepath.Base(csvPath)), "csv", "ofx")
	}
	return filepath.Join(dir, name)
}
