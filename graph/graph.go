package graph

import (
	"reflect"
	"strings"

	"github.com/kbukum/streamkit/errors"
)

// Role identifies what a stage does within a pipeline.
type Role int

const (
	// RoleSource produces elements; it has no input side.
	RoleSource Role = iota
	// RoleFlow transforms elements; it has both sides.
	RoleFlow
	// RoleSink consumes elements; it has no output side.
	RoleSink
)

func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleFlow:
		return "flow"
	case RoleSink:
		return "sink"
	default:
		return "unknown"
	}
}

// Keep records which endpoint's materialized value a connected blueprint keeps.
type Keep int

const (
	// KeepRight keeps the sink side's materialized value. This is the default
	// for a plain connect and silently discards the source side's value.
	KeepRight Keep = iota
	// KeepLeft keeps the source side's materialized value.
	KeepLeft
	// KeepBoth keeps both values.
	KeepBoth
	// KeepCustom combines both values through a caller-supplied function.
	KeepCustom
)

func (k Keep) String() string {
	switch k {
	case KeepRight:
		return "right"
	case KeepLeft:
		return "left"
	case KeepBoth:
		return "both"
	case KeepCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Stage is an immutable descriptor of one processing step. In and Out are the
// element types on each side; a source has no In, a sink has no Out.
type Stage struct {
	name string
	role Role
	in   reflect.Type
	out  reflect.Type
}

// NewStage creates a stage descriptor. Pass nil for the side a role lacks.
func NewStage(name string, role Role, in, out reflect.Type) Stage {
	return Stage{name: name, role: role, in: in, out: out}
}

// Name returns the stage's display name.
func (s Stage) Name() string { return s.name }

// Role returns the stage's role.
func (s Stage) Role() Role { return s.role }

// InType returns the element type consumed by the stage, or nil for a source.
func (s Stage) InType() reflect.Type { return s.in }

// OutType returns the element type produced by the stage, or nil for a sink.
func (s Stage) OutType() reflect.Type { return s.out }

// Blueprint is an immutable, acyclic description of a linear pipeline.
// Every composition operation returns a new Blueprint; the original stays
// usable and unaffected. Stages are immutable, so sharing them between
// blueprints is safe.
type Blueprint struct {
	stages   []Stage
	keep     Keep
	runnable bool
}

// New creates a blueprint from a single stage.
func New(stage Stage) Blueprint {
	return Blueprint{stages: []Stage{stage}}
}

// Append returns a new blueprint with the stage added downstream. The receiver
// is unchanged. Appending to a runnable blueprint or past a sink is rejected,
// as is a stage whose input type does not match the current output type.
func (b Blueprint) Append(stage Stage) (Blueprint, error) {
	if b.runnable {
		return Blueprint{}, errors.InvalidBlueprint("cannot append to a runnable blueprint")
	}
	if len(b.stages) == 0 {
		return New(stage), nil
	}
	out := b.OutType()
	if out == nil {
		return Blueprint{}, errors.InvalidBlueprint("cannot append past a sink stage")
	}
	if stage.in == nil {
		return Blueprint{}, errors.InvalidBlueprint("appended stage must have an input side")
	}
	if !compatible(out, stage.in) {
		return Blueprint{}, errors.TypeMismatch(typeName(out), typeName(stage.in))
	}
	stages := make([]Stage, len(b.stages), len(b.stages)+1)
	copy(stages, b.stages)
	return Blueprint{stages: append(stages, stage), keep: b.keep}, nil
}

// Extend returns a new blueprint with all of other's stages appended.
func (b Blueprint) Extend(other Blueprint) (Blueprint, error) {
	if other.runnable {
		return Blueprint{}, errors.InvalidBlueprint("cannot extend with a runnable blueprint")
	}
	result := b
	var err error
	for _, st := range other.stages {
		result, err = result.Append(st)
		if err != nil {
			return Blueprint{}, err
		}
	}
	return result, nil
}

// Connect joins a source-side blueprint to a sink-side blueprint, producing a
// runnable blueprint with the given keep policy recorded. Element types are
// checked here, before any run starts.
func Connect(src, snk Blueprint, keep Keep) (Blueprint, error) {
	if src.runnable || snk.runnable {
		return Blueprint{}, errors.InvalidBlueprint("cannot connect an already runnable blueprint")
	}
	if len(src.stages) == 0 || len(snk.stages) == 0 {
		return Blueprint{}, errors.InvalidBlueprint("cannot connect an empty blueprint")
	}
	if src.InType() != nil {
		return Blueprint{}, errors.InvalidBlueprint("source side must begin with a source stage")
	}
	srcOut := src.OutType()
	if srcOut == nil {
		return Blueprint{}, errors.InvalidBlueprint("source side is already closed")
	}
	snkIn := snk.InType()
	if snkIn == nil {
		return Blueprint{}, errors.InvalidBlueprint("sink side is already closed")
	}
	if snk.OutType() != nil {
		return Blueprint{}, errors.InvalidBlueprint("sink side must end with a sink stage")
	}
	if !compatible(srcOut, snkIn) {
		return Blueprint{}, errors.TypeMismatch(typeName(srcOut), typeName(snkIn))
	}

	stages := make([]Stage, 0, len(src.stages)+len(snk.stages))
	stages = append(stages, src.stages...)
	stages = append(stages, snk.stages...)
	return Blueprint{stages: stages, keep: keep, runnable: true}, nil
}

// IsRunnable reports whether the blueprint is closed on both ends.
func (b Blueprint) IsRunnable() bool { return b.runnable }

// Keep returns the recorded materialized-value keep policy.
func (b Blueprint) Keep() Keep { return b.keep }

// InType returns the open input element type, or nil when the input side is
// closed (begins with a source) or the blueprint is empty.
func (b Blueprint) InType() reflect.Type {
	if len(b.stages) == 0 {
		return nil
	}
	return b.stages[0].in
}

// OutType returns the open output element type, or nil when the output side is
// closed (ends with a sink) or the blueprint is empty.
func (b Blueprint) OutType() reflect.Type {
	if len(b.stages) == 0 {
		return nil
	}
	return b.stages[len(b.stages)-1].out
}

// Len returns the number of stages.
func (b Blueprint) Len() int { return len(b.stages) }

// Stages returns a copy of the stage descriptors.
func (b Blueprint) Stages() []Stage {
	out := make([]Stage, len(b.stages))
	copy(out, b.stages)
	return out
}

// String renders the stage chain, e.g. "from ~> map ~> fold".
func (b Blueprint) String() string {
	if len(b.stages) == 0 {
		return "<empty>"
	}
	names := make([]string, len(b.stages))
	for i, st := range b.stages {
		names[i] = st.name
	}
	return strings.Join(names, " ~> ")
}

// compatible reports whether an element of type out can feed an input of type in.
func compatible(out, in reflect.Type) bool {
	if out == in {
		return true
	}
	return out.AssignableTo(in)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}
