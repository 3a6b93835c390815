// Command vecgen writes named façade types over vec.Vector, one struct per
// element type, for packages that want a distinct type name per collection.
//
// Usage:
//
//	vecgen -package vkvec -output core_vec.go \
//		-import github.com/vkngwrapper/core/core1_0 \
//		PhysicalDevices=core1_0.PhysicalDevice Images=core1_0.Image
//
// It is meant to be run from go:generate directives.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

type importList []string

func (l *importList) String() string {
	return strings.Join(*l, ",")
}

func (l *importList) Set(path string) error {
	*l = append(*l, path)
	return nil
}

func run() error {
	var imports importList
	pkg := flag.String("package", os.Getenv("GOPACKAGE"), "package name of the generated file")
	output := flag.String("output", "", "file to write")
	vecImport := flag.String("vec", DefaultVecImport, "import path of the vec package")
	flag.Var(&imports, "import", "import path needed by an element type (repeatable)")
	flag.Parse()

	if *output == "" {
		return errors.New("-output is required")
	}

	gen, err := NewGenerator(*pkg, imports, flag.Args())
	if err != nil {
		return err
	}
	gen.VecImport = *vecImport

	src, err := gen.Generate()
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", *output)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecgen: ")

	err := run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
