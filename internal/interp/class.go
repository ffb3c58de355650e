package interp

// Class is a runtime class value: a method table and an optional
// superclass to recurse into. Grounded on
// sam-decook-lox/codecrafters/cmd/object.go's LoxClass + callable.go's
// Call/Arity/FindMethod, generalized so construction returns an error
// (propagated from the initializer) instead of the teacher's `Call`, which
// cannot fail.
type Class struct {
	Name       string
	Superclass *Class // nil if no `< Superclass` clause
	Methods    map[string]*Function
	id         uint64
}

// NewClass constructs a class value with a fresh Callable id.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods, id: newCallableID()}
}

func (*Class) TypeName() string { return "Class" }

func (c *Class) String() string { return c.Name }

func (c *Class) ID() uint64 { return c.id }

// FindMethod consults this class's own method table, then recurses into
// the superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if the class declares an `init`
// method, binds and invokes it before returning the instance — spec.md
// §4.8. The instance is returned regardless of what `init` itself
// evaluates to.
func (c *Class) Call(ip *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(ip, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
