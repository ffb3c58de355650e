package interp

// Instance is a live object: a class reference plus a mutable field map,
// shared by every reference to it (Go's reference semantics for pointer
// types give this for free, unlike the teacher's LoxInstance which
// embeds a LoxClass by value).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates a fresh, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value, 4)}
}

func (*Instance) TypeName() string { return "Instance" }

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get looks up name in the instance's own fields first, then the class's
// method chain, binding a found method to this instance before returning
// it — spec.md §4.6.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes name := value into the instance's own field map.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
