package funtup

// PipeBuilder provides a fluent API for assembling pipelines stage by
// stage:
//
//	pipe := funtup.NewPipe().
//	    Then(parse).
//	    Fan(validate, score).
//	    ThenUnpack(store).
//	    Fn()
//
// The terminal Fn call produces the same callable Compose would for the
// accumulated stages.
type PipeBuilder struct {
	stages []Fn
}

// NewPipe creates an empty pipeline builder.
func NewPipe() *PipeBuilder {
	return &PipeBuilder{stages: make([]Fn, 0)}
}

// Then appends a stage to the pipeline.
func (b *PipeBuilder) Then(f Fn) *PipeBuilder {
	if f == nil {
		panic("funtup: Then with nil callable")
	}
	b.stages = append(b.stages, f)
	return b
}

// ThenUnpack appends a stage wrapped in AutoUnpack, so a Tuple produced by
// the previous stage is spread into f's positional arguments.
func (b *PipeBuilder) ThenUnpack(f Fn) *PipeBuilder {
	return b.Then(AutoUnpack(f))
}

// Fan appends a battery stage built from the given callables.
func (b *PipeBuilder) Fan(fns ...Fn) *PipeBuilder {
	return b.Then(Battery(fns...))
}

// Len returns the number of stages added so far.
func (b *PipeBuilder) Len() int {
	return len(b.stages)
}

// Fn builds the pipeline callable from the accumulated stages.
// It panics if no stage has been added.
func (b *PipeBuilder) Fn() Fn {
	if len(b.stages) == 0 {
		panic("funtup: Fn on empty pipeline")
	}
	return Compose(b.stages...)
}
