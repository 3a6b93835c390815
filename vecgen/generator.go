package main

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultVecImport is the import path of the package the façades wrap.
const DefaultVecImport = "github.com/vkngwrapper/vulkan-vec/vec"

// Collection is one named façade: a struct called Name holding Elem values.
type Collection struct {
	Name string
	Elem string
}

// ParseCollection parses a Name=Type argument.
func ParseCollection(arg string) (Collection, error) {
	name, elem, ok := strings.Cut(arg, "=")
	if !ok {
		return Collection{}, errors.Newf("collection %q: want Name=Type", arg)
	}
	name = strings.TrimSpace(name)
	elem = strings.TrimSpace(elem)

	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return Collection{}, errors.Newf("collection %q: %q is not an exported identifier", arg, name)
	}
	if elem == "" {
		return Collection{}, errors.Newf("collection %q: missing element type", arg)
	}
	if _, err := parser.ParseExpr(elem); err != nil {
		return Collection{}, errors.Wrapf(err, "collection %q: bad element type", arg)
	}
	return Collection{Name: name, Elem: elem}, nil
}

// Generator renders one Go file holding a set of façades.
type Generator struct {
	Package     string
	Imports     []string
	VecImport   string
	Collections []Collection
}

// NewGenerator validates its arguments and returns a Generator. args are
// Name=Type pairs.
func NewGenerator(pkg string, imports []string, args []string) (*Generator, error) {
	if !token.IsIdentifier(pkg) {
		return nil, errors.Newf("package name %q is not an identifier", pkg)
	}
	if len(args) == 0 {
		return nil, errors.New("no collections given")
	}

	g := &Generator{
		Package:   pkg,
		VecImport: DefaultVecImport,
	}
	seen := map[string]bool{}
	for _, arg := range args {
		c, err := ParseCollection(arg)
		if err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, errors.Newf("collection %s given twice", c.Name)
		}
		seen[c.Name] = true
		g.Collections = append(g.Collections, c)
	}
	for _, path := range imports {
		if path == "" {
			continue
		}
		g.Imports = append(g.Imports, path)
	}
	return g, nil
}

// Generate returns the gofmt'd source.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := facadeTemplate.Execute(&buf, g); err != nil {
		return nil, errors.Wrap(err, "execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format generated source:\n%s", buf.String())
	}
	return src, nil
}
