// Package ext resolves the ARB shader object entry points at runtime.
//
// Platform GL headers and import libraries often stop at OpenGL 1.1, so the
// shader functions are looked up by name through the windowing library once a
// context is current, and bound with purego.
package ext

import (
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
)

var (
	ErrUnsupported = errors.New("shader extensions not supported")
	ErrMissingProc = errors.New("shader entry points missing")
)

// Extensions lists the extension strings the context has to report.
var Extensions = []string{
	"GL_ARB_shader_objects",
	"GL_ARB_shading_language_100",
	"GL_ARB_vertex_shader",
	"GL_ARB_fragment_shader",
}

// Loader is implemented by the windowing backends.
type Loader interface {
	ExtensionSupported(name string) bool
	ProcAddress(name string) unsafe.Pointer
}

// swapped in tests, the fake addresses must never be called
var bind = purego.RegisterFunc

// Resolve checks the required extensions and looks up every entry point. It
// succeeds only if all of them are available; there is no partial mode.
// Call it once, with the context current, after the GL bindings are initialized.
func Resolve(l Loader) (*Procs, error) {
	var missing []string
	for _, name := range Extensions {
		if !l.ExtensionSupported(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrap(ErrUnsupported, strings.Join(missing, ", "))
	}

	p := &Procs{}
	table := p.table()
	addrs := make([]uintptr, len(table))
	for i, e := range table {
		addr := l.ProcAddress(e.name)
		if addr == nil {
			missing = append(missing, e.name)
			continue
		}
		addrs[i] = uintptr(addr)
	}
	if len(missing) > 0 {
		return nil, errors.Wrap(ErrMissingProc, strings.Join(missing, ", "))
	}

	for i, e := range table {
		bind(e.fptr, addrs[i])
	}

	return p, nil
}

// Names returns the entry point names in lookup order.
func Names() []string {
	table := (&Procs{}).table()
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.name
	}
	return names
}

// Version returns the shading language version of the current context.
func Version() string {
	if v := gl.GetString(gl.SHADING_LANGUAGE_VERSION); v != nil {
		return gl.GoStr(v)
	}
	return ""
}
