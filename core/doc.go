// Package core dispatches command-line arguments to registered Go methods.
//
// A command is written as TypeName.MethodName or MethodName followed by options:
//
//	commandline ExampleCommandType.ExampleCommand /options
//	commandline NamedCommand /I:12
//	commandline Calc.Add 1 2
//
// Dispatch runs in four stages. The arguments are parsed into a command.Command.
// FindSuitableMethods collects the candidate methods. The binder picks the overload
// that consumes the most options and coerces them to the declared parameter types.
// The method is then invoked, after constructing its receiver and applying
// properties where needed.
//
// Methods report success by a leading bool result and failure by a trailing error,
// which is returned to the caller unchanged.
//
//	registry := routing.MustNewRegistry(mock.NewCalculatorType())
//	ok, err := core.NewDispatcher(registry).Run(ctx, os.Args[1:]...)
package core
