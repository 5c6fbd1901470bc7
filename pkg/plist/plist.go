// Package plist reads values from XML property lists such as a bundle's
// Contents/Info.plist.
package plist

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/javaswitch/pkg/errors"
	"github.com/arthur-debert/javaswitch/pkg/filesystem"
	"github.com/beevik/etree"
)

// KeyBundleIdentifier is the Info.plist key naming the bundle's reverse-DNS id
const KeyBundleIdentifier = "CFBundleIdentifier"

// KeyShortVersion is the Info.plist key holding the user-visible version
const KeyShortVersion = "CFBundleShortVersionString"

var binaryMagic = []byte("bplist00")

// Bundle is the identifying metadata of a bundle's Info.plist
type Bundle struct {
	Identifier string
	Version    string
}

// ReadBundle returns the identifier and short version of the property list
// at path. A missing CFBundleIdentifier is an ErrPlistKeyMissing error; the
// returned Bundle still carries whatever version was found.
func ReadBundle(fsys filesystem.FS, path string) (*Bundle, error) {
	dict, err := ReadDict(fsys, path)
	if err != nil {
		return nil, err
	}
	bundle := &Bundle{Version: dict[KeyShortVersion]}
	id, ok := dict[KeyBundleIdentifier]
	if !ok {
		return bundle, errors.Newf(errors.ErrPlistKeyMissing, "%s does not exist in %s", KeyBundleIdentifier, path).
			WithDetail("path", path)
	}
	bundle.Identifier = id
	return bundle, nil
}

// ReadDict returns every top-level string value of the property list at path.
// Non-string values (arrays, dates, nested dicts) are skipped.
func ReadDict(fsys filesystem.FS, path string) (map[string]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrPlistNotFound, "%s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrPlistNotFound, "cannot read %s", path).
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse decodes an XML property list and returns its top-level string values
func Parse(data []byte) (map[string]string, error) {
	if bytes.HasPrefix(data, binaryMagic) {
		return nil, errors.New(errors.ErrPlistParse, "binary property lists are not supported")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrPlistParse, "malformed property list")
	}

	root := doc.SelectElement("plist")
	if root == nil {
		return nil, errors.New(errors.ErrPlistParse, "missing <plist> root element")
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return nil, errors.New(errors.ErrPlistParse, "missing top-level <dict>")
	}

	values := make(map[string]string)
	children := dict.ChildElements()
	for i := 0; i < len(children); i++ {
		key := children[i]
		if key.Tag != "key" || i+1 >= len(children) {
			continue
		}
		// A key without a value is followed directly by the next key
		value := children[i+1]
		if value.Tag == "key" {
			continue
		}
		i++
		if value.Tag == "string" {
			values[strings.TrimSpace(key.Text())] = value.Text()
		}
	}
	return values, nil
}
