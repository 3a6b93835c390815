package vec

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Causes carried by a Fault or returned by the fallible accessors.
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrEmpty          = errors.New("vector is empty")
	ErrNegativeLength = errors.New("negative length")
	ErrOverflow       = errors.New("capacity overflow")
	ErrAllocation     = errors.New("allocation failed")
)

// Site is the source location of the call that misused a Vector.
type Site struct {
	File string
	Line int
	Func string
}

func (s Site) String() string {
	if s.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d:%s()", s.File, s.Line, s.Func)
}

// Fault is the panic value raised by a Vector operation that cannot
// continue. Recover it with Catch, or with errors.As on the recovered value.
type Fault struct {
	// Op is the Vector operation that failed, e.g. "At".
	Op string
	// Site is the first caller outside this package and outside any
	// forwarding package. It is empty in vecrelease builds.
	Site Site

	cause error
}

func (f *Fault) Error() string {
	if f.Site.File == "" {
		return fmt.Sprintf("vec.%s: %v", f.Op, f.cause)
	}
	return fmt.Sprintf("%s: vec.%s: %v", f.Site, f.Op, f.cause)
}

func (f *Fault) Unwrap() error {
	return f.cause
}

// fail panics with a Fault for op. It never returns.
func fail(op string, cause error) {
	f := &Fault{Op: op, cause: cause}
	if Checked {
		f.Site = callerSite()
	}
	panic(errors.WithStackDepth(f, 1))
}

// Catch runs fn and returns the Fault it panicked with, if any. Panics that
// are not faults are re-raised.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		var f *Fault
		if !ok || !errors.As(e, &f) {
			panic(r)
		}
		err = e
	}()

	fn()
	return nil
}

var (
	selfPackage = packageOf(thisFunc())
	forwarding  = map[string]bool{}
)

// MarkForwarding registers the calling package as a thin wrapper around
// Vector. Fault sites skip its frames and name the wrapper's caller instead.
// It is meant to be called from an init function.
func MarkForwarding() {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		forwarding[packageOf(fn.Name())] = true
	}
}

func callerSite() Site {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !skipFrame(frame) {
			return Site{File: frame.File, Line: frame.Line, Func: shortFunc(frame.Function)}
		}
		if !more {
			return Site{}
		}
	}
}

func skipFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	pkg := packageOf(frame.Function)
	return pkg == selfPackage || forwarding[pkg]
}

func thisFunc() string {
	pc, _, _, _ := runtime.Caller(0)
	return runtime.FuncForPC(pc).Name()
}

// packageOf returns the import path part of a fully qualified function name
// such as "example.com/a/b.(*T[...]).M".
func packageOf(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

func shortFunc(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
