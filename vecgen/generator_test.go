package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func methodsByReceiver(file *ast.File) map[string][]string {
	methods := map[string][]string{}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		star, ok := fn.Recv.List[0].Type.(*ast.StarExpr)
		if !ok {
			continue
		}
		recv := star.X.(*ast.Ident).Name
		methods[recv] = append(methods[recv], fn.Name.Name)
	}
	return methods
}

func TestParseCollection(t *testing.T) {
	Convey("Given Name=Type arguments", t, func() {
		Convey("a qualified element type is accepted", func() {
			c, err := ParseCollection("PhysicalDevices=core1_0.PhysicalDevice")
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "PhysicalDevices")
			So(c.Elem, ShouldEqual, "core1_0.PhysicalDevice")
		})

		Convey("composite element types are accepted", func() {
			c, err := ParseCollection(" Names = *[4]string ")
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "Names")
			So(c.Elem, ShouldEqual, "*[4]string")
		})

		Convey("malformed arguments are rejected", func() {
			for _, arg := range []string{
				"Strings",
				"strings=string",
				"1st=int",
				"Empty=",
				"Bad=map[string",
			} {
				_, err := ParseCollection(arg)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestNewGenerator(t *testing.T) {
	Convey("Given generator arguments", t, func() {
		Convey("duplicate names are rejected", func() {
			_, err := NewGenerator("vkvec", nil, []string{"Ints=int", "Ints=int64"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "given twice")
		})

		Convey("a package name is required", func() {
			_, err := NewGenerator("", nil, []string{"Ints=int"})
			So(err, ShouldNotBeNil)
		})

		Convey("at least one collection is required", func() {
			_, err := NewGenerator("vkvec", nil, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("empty import paths are dropped", func() {
			g, err := NewGenerator("vkvec", []string{"", "image"}, []string{"Ints=int"})
			So(err, ShouldBeNil)
			So(g.Imports, ShouldResemble, []string{"image"})
			So(g.VecImport, ShouldEqual, DefaultVecImport)
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given a generator for two collections", t, func() {
		g, err := NewGenerator("vkvec",
			[]string{"github.com/vkngwrapper/core/core1_0"},
			[]string{"PhysicalDevices=core1_0.PhysicalDevice", "Strings=string"})
		So(err, ShouldBeNil)

		src, err := g.Generate()
		So(err, ShouldBeNil)

		Convey("the output is valid Go in the requested package", func() {
			file, err := parser.ParseFile(token.NewFileSet(), "out.go", src, parser.ParseComments)
			So(err, ShouldBeNil)
			So(file.Name.Name, ShouldEqual, "vkvec")
			So(ast.IsGenerated(file), ShouldBeTrue)

			var paths []string
			for _, imp := range file.Imports {
				paths = append(paths, imp.Path.Value)
			}
			So(paths, ShouldResemble, []string{`"github.com/vkngwrapper/core/core1_0"`, `"` + DefaultVecImport + `"`})

			Convey("every collection gets the full method set", func() {
				want := []string{
					"PushBack", "PopBack", "GetAt", "SetAt", "GetFront", "IterBegin", "IterAt",
					"Length", "Capacity", "Resize", "Grow", "Clear", "Free",
				}
				methods := methodsByReceiver(file)
				So(methods["PhysicalDevices"], ShouldResemble, want)
				So(methods["Strings"], ShouldResemble, want)
			})
		})

		Convey("the package registers itself as forwarding", func() {
			So(string(src), ShouldContainSubstring, "vec.MarkForwarding()")
			So(string(src), ShouldContainSubstring, "v vec.Vector[core1_0.PhysicalDevice]")
		})
	})

	Convey("Given a generator without extra imports", t, func() {
		g, err := NewGenerator("vkvec", nil, []string{"Ints=int"})
		So(err, ShouldBeNil)

		src, err := g.Generate()
		So(err, ShouldBeNil)
		So(string(src), ShouldContainSubstring, "import (\n\t\""+DefaultVecImport+"\"\n)")
	})
}
