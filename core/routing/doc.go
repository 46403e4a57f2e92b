// Package routing defines the registration metadata the dispatcher searches:
// candidate types, their constructors, methods, parameters and properties.
//
// Go has neither parameter names nor overloading at run time, so both are declared
// when a type is registered. Each registration is a small descriptor carrying the
// command name, its optional alias and the parameter shape; the reflective function
// behind it is called by [github.com/anoideaopen/commandline/core].
//
// # Names
//
// Commands, types, parameters and properties are matched by Key, which ignores case
// and word separators. A method alias replaces the method name for matching.
//
// # Example
//
//	type ExampleType struct {
//	    Timeout time.Duration
//	}
//
//	func (e *ExampleType) Foo(count int) {}
//	func (e *ExampleType) FooAll() {}
//
//	t := routing.NewType[ExampleType]("ExampleType").
//	    Property("Timeout", "T").
//	    Method("Foo", routing.Params(routing.Param{Name: "Count", Alias: "C"})).
//	    Method("FooAll", routing.Named("Foo"))
//
//	registry, err := routing.NewRegistry(t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Here "Foo" has two overloads; the dispatcher picks FooAll when no options are
// supplied and Foo when /Count is.
package routing
