// Package mock provides candidate types shared by the dispatcher tests.
package mock

import (
	"time"

	"github.com/anoideaopen/commandline/core/routing"
)

// Recorder records which example commands ran.
type Recorder struct {
	ExampleCommandRan            bool
	ExampleCommandWithOptionsRan bool
	StaticCommandRan             bool
	StaticCommandWithOptionsRan  bool
	CommandWithNameRan           bool
	TestThePropertyRan           bool
	TestTheConstructorRan        bool
}

// ExampleCommandType exposes overloaded, static, aliased and property-driven commands.
type ExampleCommandType struct {
	TestProperty time.Duration
	TestBoolean  bool

	rec *Recorder
}

func (e *ExampleCommandType) ExampleCommand() {
	e.rec.ExampleCommandRan = true
}

func (e *ExampleCommandType) ExampleCommandWithOptions(_ string) {
	e.rec.ExampleCommandWithOptionsRan = true
}

func (e *ExampleCommandType) CommandWithName(index int) {
	if index == 12 {
		e.rec.CommandWithNameRan = true
	}
}

func (e *ExampleCommandType) TestTheProperty() {
	e.rec.TestThePropertyRan = e.TestProperty > 24*time.Hour
}

func (e *ExampleCommandType) TestTheConstructor() {
	e.rec.TestTheConstructorRan = e.TestBoolean
}

// NewExampleType registers ExampleCommandType. Every command reports to rec.
func NewExampleType(rec *Recorder) *routing.Type {
	return routing.NewType[ExampleCommandType]("ExampleCommandType").
		Constructor(func() *ExampleCommandType {
			return &ExampleCommandType{rec: rec}
		}).
		Constructor(func(tp bool) *ExampleCommandType {
			return &ExampleCommandType{TestBoolean: tp, rec: rec}
		}, routing.Param{Name: "tp"}).
		Property("TestProperty", "TP").
		Method("ExampleCommand").
		Method("ExampleCommandWithOptions",
			routing.Named("ExampleCommand"),
			routing.Params(routing.Param{Name: "options"}),
		).
		Static("StaticCommand", func() {
			rec.StaticCommandRan = true
		}).
		Static("StaticCommand", func(_ string) {
			rec.StaticCommandWithOptionsRan = true
		}, routing.Params(routing.Param{Name: "options"})).
		Method("CommandWithName",
			routing.Alias("NamedCommand"),
			routing.Params(routing.Param{Name: "index", Alias: "I"}),
		).
		Method("TestTheProperty").
		Method("TestTheConstructor")
}
