package objsys

import (
	"testing"

	"github.com/cwbudde/redart/internal/object"
)

func TestSweepRemovesUnreachable(t *testing.T) {
	o := New()
	root := o.RegisterInstance("A")
	garbage := o.RegisterInstance("B")

	Collect(o, []object.RefKey{root.ID})

	if !o.HasInstance(root.ID) {
		t.Fatal("reachable instance was collected")
	}
	if o.HasInstance(garbage.ID) {
		t.Fatal("unreachable instance survived sweep")
	}
}

func TestMarkFollowsInstanceFieldReferences(t *testing.T) {
	o := New()
	parent := o.RegisterInstance("Parent")
	child := o.RegisterInstance("Child")
	parent.Fields["child"] = object.Ref(child.ID)

	Collect(o, []object.RefKey{parent.ID})

	if !o.HasInstance(child.ID) {
		t.Fatal("reachable child referenced from a field was collected")
	}
}

func TestMarkSurvivesCycle(t *testing.T) {
	o := New()
	a := o.RegisterInstance("A")
	b := o.RegisterInstance("B")
	a.Fields["other"] = object.Ref(b.ID)
	b.Fields["other"] = object.Ref(a.ID)

	Collect(o, []object.RefKey{a.ID})

	if !o.HasInstance(a.ID) || !o.HasInstance(b.ID) {
		t.Fatal("cyclic pair should survive when reachable from a root")
	}
}

func TestMarkFollowsListElements(t *testing.T) {
	o := New()
	inst := o.RegisterInstance("Held")
	list := o.RegisterList()
	list.Add(object.Ref(inst.ID))

	Collect(o, []object.RefKey{list.ID})

	if !o.HasInstance(inst.ID) {
		t.Fatal("instance referenced from a list element was collected")
	}
}
