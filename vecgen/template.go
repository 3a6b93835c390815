package main

import "text/template"

var facadeTemplate = template.Must(template.New("facade").Parse(`// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
{{- if .Imports}}
{{end}}
	"{{.VecImport}}"
)

func init() {
	vec.MarkForwarding()
}
{{range .Collections}}
// {{.Name}} is a growable array of {{.Elem}}. The zero value is empty.
type {{.Name}} struct {
	v vec.Vector[{{.Elem}}]
}

// PushBack appends item.
func (c *{{.Name}}) PushBack(item {{.Elem}}) {
	c.v.Push(item)
}

// PopBack removes and returns the last element.
func (c *{{.Name}}) PopBack() {{.Elem}} {
	return c.v.Pop()
}

// GetAt returns the element at index.
func (c *{{.Name}}) GetAt(index int) {{.Elem}} {
	return c.v.At(index)
}

// SetAt replaces the element at index.
func (c *{{.Name}}) SetAt(index int, item {{.Elem}}) {
	*c.v.Ref(index) = item
}

// GetFront returns the first element.
func (c *{{.Name}}) GetFront() {{.Elem}} {
	return c.v.Front()
}

// IterBegin returns the elements as a slice that is valid until the next
// call that can grow c.
func (c *{{.Name}}) IterBegin() []{{.Elem}} {
	return c.v.Data()
}

// IterAt returns the elements from index on, valid until the next call that
// can grow c.
func (c *{{.Name}}) IterAt(index int) []{{.Elem}} {
	return c.v.From(index)
}

// Length returns the number of elements.
func (c *{{.Name}}) Length() int {
	if c == nil {
		return 0
	}
	return c.v.Len()
}

// Capacity returns the number of allocated slots.
func (c *{{.Name}}) Capacity() int {
	if c == nil {
		return 0
	}
	return c.v.Cap()
}

// Resize sets the length to n.
func (c *{{.Name}}) Resize(n int) {
	c.v.Resize(n)
}

// Grow makes room for at least n elements.
func (c *{{.Name}}) Grow(n int) {
	c.v.Grow(n)
}

// Clear drops all elements and keeps the allocation.
func (c *{{.Name}}) Clear() {
	if c == nil {
		return
	}
	c.v.Clear()
}

// Free releases the storage.
func (c *{{.Name}}) Free() {
	if c == nil {
		return
	}
	c.v.Free()
}
{{end}}`))
