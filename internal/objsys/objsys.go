package objsys

import "github.com/cwbudde/redart/internal/object"

// ObjSys is the heap: three RefKey-addressed arenas (instances, lists,
// files) plus the class registry and the current `this` receiver. A
// single RefKey appears in at most one arena.
type ObjSys struct {
	instances map[object.RefKey]*Instance
	lists     map[object.RefKey]*InternalList
	files     map[object.RefKey]*InternalFile
	classes   map[string]*Class

	this    object.RefKey
	hasThis bool
}

func New() *ObjSys {
	return &ObjSys{
		instances: make(map[object.RefKey]*Instance),
		lists:     make(map[object.RefKey]*InternalList),
		files:     make(map[object.RefKey]*InternalFile),
		classes:   make(map[string]*Class),
	}
}

// RegisterInstance, RegisterList and RegisterFile insert a
// freshly-constructed arena object under a freshly-generated RefKey.

func (o *ObjSys) RegisterInstance(className string) *Instance {
	inst := NewInstance(NewRefKey(), className)
	o.instances[inst.ID] = inst
	return inst
}

func (o *ObjSys) RegisterList() *InternalList {
	l := NewInternalList(NewRefKey())
	o.lists[l.ID] = l
	return l
}

func (o *ObjSys) RegisterFile(path string) (*InternalFile, error) {
	f, err := OpenInternalFile(NewRefKey(), path)
	if err != nil {
		return nil, err
	}
	o.files[f.ID] = f
	return f, nil
}

func (o *ObjSys) GetInstance(k object.RefKey) (*Instance, bool) {
	inst, ok := o.instances[k]
	return inst, ok
}

func (o *ObjSys) GetList(k object.RefKey) (*InternalList, bool) {
	l, ok := o.lists[k]
	return l, ok
}

func (o *ObjSys) GetFile(k object.RefKey) (*InternalFile, bool) {
	f, ok := o.files[k]
	return f, ok
}

func (o *ObjSys) HasInstance(k object.RefKey) bool {
	_, ok := o.instances[k]
	return ok
}

// RegisterClass adds cls to the class registry, keyed by its name.
func (o *ObjSys) RegisterClass(cls *Class) {
	o.classes[cls.Name] = cls
}

func (o *ObjSys) GetClass(name string) (*Class, bool) {
	cls, ok := o.classes[name]
	return cls, ok
}

// This returns the current receiver RefKey and whether one is set.
func (o *ObjSys) This() (object.RefKey, bool) {
	return o.this, o.hasThis
}

func (o *ObjSys) SetThis(k object.RefKey) {
	o.this = k
	o.hasThis = true
}

// ClearThis empties the `this` slot, restoring the "no receiver"
// state (used when a method, constructor or toString call returns and
// no receiver was set before it).
func (o *ObjSys) ClearThis() {
	o.this = 0
	o.hasThis = false
}
