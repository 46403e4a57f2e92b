package mock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anoideaopen/commandline/core/routing"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrDivisionByZero is returned by Calculator.Divide.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNegativePrecision is returned by the Calculator constructor.
var ErrNegativePrecision = errors.New("negative precision")

// Calculator exercises parameter binding: positionals, optional parameters,
// return conventions, context injection and structured values.
type Calculator struct {
	Precision int
	Verbose   bool
	Unit      string
}

// NewCalculator rejects a negative precision.
func NewCalculator(precision int) (*Calculator, error) {
	if precision < 0 {
		return nil, ErrNegativePrecision
	}
	return &Calculator{Precision: precision}, nil
}

// Add returns a + b.
func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

// Divide returns a / b or ErrDivisionByZero.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// IsPositive reports success only for n > 0.
func (c *Calculator) IsPositive(n int) bool {
	return n > 0
}

// Scale multiplies n by factor.
func (c *Calculator) Scale(n float64, factor float64) float64 {
	return n * factor
}

// Format renders n with the configured precision and unit.
func (c *Calculator) Format(n float64) string {
	return fmt.Sprintf("%.*f%s", c.Precision, n, c.Unit)
}

// Join concatenates parts with sep.
func (c *Calculator) Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// Wait blocks for d or until ctx is done.
func (c *Calculator) Wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Field returns the string value of the named field of s.
func (c *Calculator) Field(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

// Describe returns the calculator settings.
func (c *Calculator) Describe() string {
	return fmt.Sprintf("precision=%d verbose=%t unit=%s", c.Precision, c.Verbose, c.Unit)
}

// Pick returns a.
func (c *Calculator) Pick(a int) int {
	return a
}

// PickOther returns b. It overloads Pick.
func (c *Calculator) PickOther(b int) int {
	return b * 10
}

// NewCalculatorType registers Calculator as "Calc".
func NewCalculatorType() *routing.Type {
	return routing.NewType[Calculator]("Calc").
		Constructor(NewCalculator, routing.Param{Name: "precision", Alias: "p"}).
		Property("Verbose", "v").
		Property("Unit", "").
		Method("Add", routing.Params(routing.Param{Name: "a"}, routing.Param{Name: "b"})).
		Method("Divide", routing.Params(routing.Param{Name: "a"}, routing.Param{Name: "b"})).
		Method("IsPositive", routing.Params(routing.Param{Name: "n"})).
		Method("Scale", routing.Params(
			routing.Param{Name: "n"},
			routing.Param{Name: "factor", Optional: true, Default: "2"},
		)).
		Method("Format", routing.Params(routing.Param{Name: "n"})).
		Method("Join", routing.Params(
			routing.Param{Name: "parts"},
			routing.Param{Name: "sep", Optional: true},
		)).
		Method("Wait", routing.Alias("sleep"), routing.Params(routing.Param{Name: "duration", Alias: "d"})).
		Method("Field", routing.Params(routing.Param{Name: "struct", Alias: "s"}, routing.Param{Name: "name"})).
		Method("Describe").
		Method("Pick", routing.Params(routing.Param{Name: "a"})).
		Method("PickOther", routing.Named("Pick"), routing.Params(routing.Param{Name: "b"}))
}
