package graph

import (
	"reflect"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
)

func sourceOf(t reflect.Type) Blueprint {
	return New(NewStage("from", RoleSource, nil, t))
}

func sinkOf(t reflect.Type) Blueprint {
	return New(NewStage("fold", RoleSink, t, nil))
}

func flowStage(in, out reflect.Type) Stage {
	return NewStage("map", RoleFlow, in, out)
}

func TestConnect_Matching(t *testing.T) {
	bp, err := Connect(sourceOf(intType), sinkOf(intType), KeepRight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bp.IsRunnable() {
		t.Error("expected runnable blueprint")
	}
	if bp.Keep() != KeepRight {
		t.Errorf("expected keep policy right, got %s", bp.Keep())
	}
	if bp.Len() != 2 {
		t.Errorf("expected 2 stages, got %d", bp.Len())
	}
}

func TestConnect_TypeMismatch(t *testing.T) {
	pairs := []struct {
		name    string
		out, in reflect.Type
	}{
		{"int to string", intType, stringType},
		{"string to int", stringType, intType},
		{"struct to int", reflect.TypeOf(struct{ X int }{}), intType},
		{"slice to element", reflect.TypeOf([]int{}), intType},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Connect(sourceOf(tc.out), sinkOf(tc.in), KeepRight)
			if err == nil {
				t.Fatal("expected type mismatch error")
			}
			if !errors.IsTypeMismatch(err) {
				t.Errorf("expected TYPE_MISMATCH, got %v", err)
			}
		})
	}
}

func TestConnect_AssignableInterface(t *testing.T) {
	anyType := reflect.TypeOf((*any)(nil)).Elem()
	if _, err := Connect(sourceOf(intType), sinkOf(anyType), KeepRight); err != nil {
		t.Errorf("int should be assignable to any, got %v", err)
	}
}

func TestConnect_Invalid(t *testing.T) {
	runnable, err := Connect(sourceOf(intType), sinkOf(intType), KeepRight)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  Blueprint
		snk  Blueprint
	}{
		{"empty source side", Blueprint{}, sinkOf(intType)},
		{"empty sink side", sourceOf(intType), Blueprint{}},
		{"runnable source side", runnable, sinkOf(intType)},
		{"sink as source side", sinkOf(intType), sinkOf(intType)},
		{"source as sink side", sourceOf(intType), sourceOf(intType)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Connect(tc.src, tc.snk, KeepRight)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidBlueprint) {
				t.Errorf("expected INVALID_BLUEPRINT, got %v", err)
			}
		})
	}
}

func TestAppend_Immutable(t *testing.T) {
	original := sourceOf(intType)
	extended, err := original.Append(flowStage(intType, stringType))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if original.Len() != 1 {
		t.Errorf("original mutated: expected 1 stage, got %d", original.Len())
	}
	if original.OutType() != intType {
		t.Errorf("original output type changed: %v", original.OutType())
	}
	if extended.Len() != 2 {
		t.Errorf("expected 2 stages, got %d", extended.Len())
	}
	if extended.OutType() != stringType {
		t.Errorf("expected string output, got %v", extended.OutType())
	}
}

func TestAppend_DivergingBranches(t *testing.T) {
	// Two blueprints derived from the same prefix must not interfere.
	base := sourceOf(intType)
	a, err := base.Append(NewStage("map-a", RoleFlow, intType, intType))
	if err != nil {
		t.Fatal(err)
	}
	b, err := base.Append(NewStage("map-b", RoleFlow, intType, stringType))
	if err != nil {
		t.Fatal(err)
	}
	if a.Stages()[1].Name() != "map-a" {
		t.Errorf("branch a corrupted: %s", a)
	}
	if b.Stages()[1].Name() != "map-b" {
		t.Errorf("branch b corrupted: %s", b)
	}
	if b.OutType() != stringType {
		t.Errorf("expected string output on branch b, got %v", b.OutType())
	}
}

func TestAppend_TypeMismatch(t *testing.T) {
	_, err := sourceOf(intType).Append(flowStage(stringType, stringType))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsTypeMismatch(err) {
		t.Errorf("expected TYPE_MISMATCH, got %v", err)
	}
}

func TestExtend(t *testing.T) {
	flow := New(flowStage(intType, intType))
	flow2, err := flow.Append(flowStage(intType, stringType))
	if err != nil {
		t.Fatal(err)
	}
	combined, err := sourceOf(intType).Extend(flow2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if combined.Len() != 3 {
		t.Errorf("expected 3 stages, got %d", combined.Len())
	}
	if combined.OutType() != stringType {
		t.Errorf("expected string output, got %v", combined.OutType())
	}
}

func TestBlueprint_String(t *testing.T) {
	bp, err := Connect(sourceOf(intType), sinkOf(intType), KeepRight)
	if err != nil {
		t.Fatal(err)
	}
	if got := bp.String(); got != "from ~> fold" {
		t.Errorf("expected 'from ~> fold', got %q", got)
	}
	if got := (Blueprint{}).String(); got != "<empty>" {
		t.Errorf("expected '<empty>', got %q", got)
	}
}

func TestKeep_String(t *testing.T) {
	cases := map[Keep]string{
		KeepRight:  "right",
		KeepLeft:   "left",
		KeepBoth:   "both",
		KeepCustom: "custom",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("Keep(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestRole_String(t *testing.T) {
	if RoleSource.String() != "source" || RoleFlow.String() != "flow" || RoleSink.String() != "sink" {
		t.Error("unexpected role names")
	}
}
