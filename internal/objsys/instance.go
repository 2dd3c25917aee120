package objsys

import "github.com/cwbudde/redart/internal/object"

// Instance is a heap-allocated object created by class instantiation.
// Field iteration order is not meaningful (the spec only requires
// stable order during the one-time initializer pass, which reads
// Class.Fields, not Instance.Fields), so a plain map suffices here.
type Instance struct {
	ID        object.RefKey
	ClassName string
	Fields    map[string]object.Object
	marked    bool
}

func NewInstance(id object.RefKey, className string) *Instance {
	return &Instance{ID: id, ClassName: className, Fields: make(map[string]object.Object)}
}
