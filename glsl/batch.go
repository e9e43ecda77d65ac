package glsl

import "github.com/pkg/errors"

// Batch is an ordered set of shaders compiled together. Its Ready flag is set
// only when every shader compiled and linked.
type Batch struct {
	ctx     *Context
	shaders []*Shader
	ready   bool
}

func (c *Context) NewBatch(shaders ...*Shader) *Batch {
	return &Batch{
		ctx:     c,
		shaders: shaders,
	}
}

func (b *Batch) Ready() bool          { return b.ready }
func (b *Batch) Len() int             { return len(b.shaders) }
func (b *Batch) Shader(i int) *Shader { return b.shaders[i] }

// active reports whether it is safe to call into the program entry points.
func (b *Batch) active() bool {
	return b.ctx.supported && b.ready
}

// Compile compiles the shaders in order and stops at the first failure. Shaders
// compiled before the failure keep their objects until Free.
func (b *Batch) Compile() error {
	b.ready = false

	if !b.ctx.supported {
		b.ctx.log.Println("unable to compile shaders: shaders not supported")
		return ErrUnsupported
	}

	for _, s := range b.shaders {
		if err := b.ctx.Compile(s); err != nil {
			b.ctx.log.Printf("unable to compile shader %q", s.Name)
			return errors.Wrapf(err, "compile batch")
		}
	}

	b.ready = true
	return nil
}

// Enable makes s the current program. It does nothing unless shaders are
// supported and the batch is ready, so it can be called every frame.
func (b *Batch) Enable(s *Shader) {
	if b.active() {
		b.ctx.funcs.UseProgramObject(s.program)
	}
}

// Disable returns to the fixed-function pipeline, guarded like Enable.
func (b *Batch) Disable() {
	if b.active() {
		b.ctx.funcs.UseProgramObject(0)
	}
}

// Uniform looks up an application uniform of s. ok is false when the batch is
// not usable or s does not declare name.
func (b *Batch) Uniform(s *Shader, name string) (location int32, ok bool) {
	if !b.active() {
		return -1, false
	}
	location = b.ctx.funcs.UniformLocation(s.program, name)
	return location, location >= 0
}

// Free releases every shader of the batch: sources, shader objects and program.
// GL objects are left alone when shaders were never supported.
func (b *Batch) Free() {
	for _, s := range b.shaders {
		s.release(b.ctx.funcs, b.ctx.supported)
	}
	b.ready = false
}
