package objsys

import "github.com/cwbudde/redart/internal/object"

// Mark traces every root RefKey, following outgoing references
// (instance fields and list elements that hold a Reference; files
// have no outgoing references) and flags every object it reaches as
// marked. Roots already marked are not re-traced, which makes cycles
// safe.
func Mark(o *ObjSys, roots []object.RefKey) {
	pending := append([]object.RefKey(nil), roots...)
	for len(pending) > 0 {
		k := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if inst, ok := o.instances[k]; ok {
			if inst.marked {
				continue
			}
			inst.marked = true
			for _, v := range inst.Fields {
				if v.Kind == object.ReferenceKind {
					pending = append(pending, v.Ref)
				}
			}
			continue
		}
		if l, ok := o.lists[k]; ok {
			if l.marked {
				continue
			}
			l.marked = true
			for _, v := range l.Elements {
				if v.Kind == object.ReferenceKind {
					pending = append(pending, v.Ref)
				}
			}
			continue
		}
		if f, ok := o.files[k]; ok {
			f.marked = true
		}
	}
}

// Sweep removes every arena entry whose marked flag is false.
func Sweep(o *ObjSys) {
	for k, v := range o.instances {
		if !v.marked {
			delete(o.instances, k)
		}
	}
	for k, v := range o.lists {
		if !v.marked {
			delete(o.lists, k)
		}
	}
	for k, v := range o.files {
		if !v.marked {
			delete(o.files, k)
		}
	}
}

// ClearMarks resets marked on every surviving arena entry, readying
// the heap for the next Mark/Sweep cycle.
func ClearMarks(o *ObjSys) {
	for _, v := range o.instances {
		v.marked = false
	}
	for _, v := range o.lists {
		v.marked = false
	}
	for _, v := range o.files {
		v.marked = false
	}
}

// Collect runs one full Mark/Sweep/ClearMarks cycle given the current
// roots.
func Collect(o *ObjSys, roots []object.RefKey) {
	Mark(o, roots)
	Sweep(o)
	ClearMarks(o)
}
