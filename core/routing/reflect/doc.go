// Package reflect provides the reflection primitives used to bind command-line option text
// to Go values and to call registered command functions.
//
// Argument Parsing:
//
// ParseValue converts the text of an option into a value of the parameter's declared type.
// Plain strings pass through unchanged, booleans, integers and floats are parsed with
// strconv, time.Duration accepts both Go duration strings and time-span notation (see
// ParseTimeSpan), protobuf messages are read with protojson, and anything else is tried as
// JSON, encoding.TextUnmarshaler and encoding.BinaryUnmarshaler in that order.
//
// Example:
//
//	v, err := reflect.ParseValue("3", reflect.TypeOf(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Int()) // Output: 3
//
// Validation:
//
// Parsed values implementing [github.com/anoideaopen/commandline/core/types.Checker] or
// [github.com/anoideaopen/commandline/core/types.Validator] are checked by ParseArgument
// before they reach the command.
//
//	type Port struct {
//	    Value int
//	}
//
//	func (p *Port) Check() error {
//	    if p.Value <= 0 || p.Value > 65535 {
//	        return errors.New("port out of range")
//	    }
//	    return nil
//	}
//
// Invocation:
//
// Call invokes a function value with prepared inputs and returns its outputs. Methods are
// called through method expressions, so the receiver is the first input. SplitError and
// LeadingBool interpret the conventional (bool, error) shaped results of a command.
//
// Error Handling:
//
// Conversion failures are reported as ValueError, which matches ErrInvalidArgumentValue
// with errors.Is and unwraps to the underlying parse error.
package reflect
