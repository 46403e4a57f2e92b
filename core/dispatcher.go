package core

import (
	"context"
	"os"

	"github.com/anoideaopen/commandline/core/command"
	"github.com/anoideaopen/commandline/core/logger"
	"github.com/anoideaopen/commandline/core/routing"
	"github.com/anoideaopen/commandline/core/telemetry"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Result is the outcome of a dispatched command.
type Result struct {
	Method  *routing.Method // Method that was invoked.
	Outputs []any           // Results of the method without the trailing error.
	Success bool            // Leading bool result, or true when the method returns none.
}

// Dispatcher resolves commands against a registry and invokes them. It holds
// read-only state only and may be shared between goroutines.
type Dispatcher struct {
	registry *routing.Registry
	syntax   command.Syntax
	log      *logrus.Entry
	tracing  *telemetry.TracingHandler
}

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithSyntax sets the option token syntax used by Run and RunLine.
func WithSyntax(syntax command.Syntax) Option {
	return func(d *Dispatcher) {
		d.syntax = syntax
	}
}

// WithLogger sets the log entry dispatch events are written to.
func WithLogger(log *logrus.Entry) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithTracerProvider sets the provider of the dispatch spans. The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Dispatcher) {
		d.tracing = telemetry.NewTracingHandler(tp)
	}
}

// NewDispatcher creates a Dispatcher for the types of registry.
func NewDispatcher(registry *routing.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		syntax:   command.DefaultSyntax,
		log:      logrus.NewEntry(logger.Logger()),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.tracing == nil {
		d.tracing = telemetry.NewTracingHandler(nil)
	}

	return d
}

// Parse parses raw arguments with the dispatcher syntax.
func (d *Dispatcher) Parse(args ...string) (*command.Command, error) {
	return command.Parse(args, d.syntax)
}

// Run parses args and executes the command. It reports the success flag of the method.
func (d *Dispatcher) Run(ctx context.Context, args ...string) (bool, error) {
	cmd, err := d.Parse(args...)
	if err != nil {
		return false, err
	}

	return d.run(ctx, cmd)
}

// RunLine splits line with shell quoting rules and executes the command.
func (d *Dispatcher) RunLine(ctx context.Context, line string) (bool, error) {
	cmd, err := command.FromLine(line, d.syntax)
	if err != nil {
		return false, err
	}

	return d.run(ctx, cmd)
}

func (d *Dispatcher) run(ctx context.Context, cmd *command.Command) (bool, error) {
	result, err := d.Execute(ctx, cmd)
	if err != nil {
		return false, err
	}

	return result.Success, nil
}

// FindSuitableMethods returns the registered methods the command may refer to.
// A qualified command is looked up in the registry by its type name.
func (d *Dispatcher) FindSuitableMethods(cmd *command.Command) ([]*routing.Method, error) {
	if cmd == nil || cmd.TypeName() == "" {
		return FindSuitableMethods(cmd, d.registry.Types()...)
	}

	t, ok := d.registry.Lookup(cmd.TypeName())
	if !ok {
		if len(d.registry.Types()) == 0 {
			return nil, ErrNoCandidateTypes
		}
		return nil, unknownType(cmd)
	}

	return FindSuitableMethods(cmd, t)
}

// Commands returns all registered methods in registration order.
func (d *Dispatcher) Commands() []*routing.Method {
	methods := make([]*routing.Method, 0)
	for _, t := range d.registry.Types() {
		methods = append(methods, t.Methods()...)
	}
	return methods
}

// Execute resolves, binds and invokes the command.
//
// The stages run in order and each one gets its own span under a "dispatch" span:
//  1. resolve finds the candidate methods by type and command name.
//  2. bind selects one overload and coerces its arguments.
//  3. invoke constructs the receiver if needed and calls the method.
//
// An error returned by the invoked method is returned unchanged together with a
// Result whose Success is false.
func (d *Dispatcher) Execute(ctx context.Context, cmd *command.Command) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cmd == nil {
		return nil, command.ErrMissingCommand
	}

	dispatchID := uuid.NewString()
	log := d.log.WithFields(logrus.Fields{
		"dispatch_id": dispatchID,
		"command":     cmd.String(),
	})

	ctx, span := d.tracing.StartNewSpan(ctx, "dispatch", trace.WithAttributes(
		telemetry.DispatchID(dispatchID),
		telemetry.Command(cmd.String()),
	))

	result, err := d.execute(ctx, cmd, log)
	if result != nil {
		span.SetAttributes(telemetry.Success(result.Success))
	}
	telemetry.EndSpan(span, err)

	if err != nil {
		log.WithError(err).Debug("dispatch failed")
		return result, err
	}

	log.WithField("success", result.Success).Debug("dispatched")
	return result, nil
}

func (d *Dispatcher) execute(ctx context.Context, cmd *command.Command, log *logrus.Entry) (*Result, error) {
	methods, err := d.resolve(ctx, cmd, log)
	if err != nil {
		return nil, err
	}

	b, err := d.bind(ctx, cmd, methods, log)
	if err != nil {
		return nil, err
	}

	return d.invoke(ctx, b, log)
}

func (d *Dispatcher) resolve(ctx context.Context, cmd *command.Command, log *logrus.Entry) ([]*routing.Method, error) {
	_, span := d.tracing.StartNewSpan(ctx, "resolve")

	methods, err := d.FindSuitableMethods(cmd)
	span.SetAttributes(telemetry.Candidates(len(methods)))
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	log.WithField("candidates", len(methods)).Debug("resolved")
	return methods, nil
}

func (d *Dispatcher) bind(ctx context.Context, cmd *command.Command, methods []*routing.Method, log *logrus.Entry) (*binding, error) {
	_, span := d.tracing.StartNewSpan(ctx, "bind")

	b, err := bind(methods, cmd.Options())
	if b != nil {
		span.SetAttributes(
			telemetry.TypeName(b.method.Owner().Name()),
			telemetry.Method(b.method.String()),
		)
	}
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"type":   b.method.Owner().Name(),
		"method": b.method.String(),
	}).Debug("bound")
	return b, nil
}

func (d *Dispatcher) invoke(ctx context.Context, b *binding, log *logrus.Entry) (*Result, error) {
	methodType := telemetry.MethodInstance
	if b.method.Static {
		methodType = telemetry.MethodStatic
	}

	ctx, span := d.tracing.StartNewSpan(ctx, "invoke", trace.WithAttributes(telemetry.MethodType(methodType)))
	span.AddEvent("call")

	outputs, success, err := invoke(ctx, b)
	telemetry.EndSpan(span, err)

	result := &Result{
		Method:  b.method,
		Outputs: outputs,
		Success: success,
	}
	if err != nil {
		return result, err
	}

	log.WithField("method_type", methodType.String()).Debug("invoked")
	return result, nil
}

// Run executes the command against the given types with the default dispatcher settings.
func Run(cmd *command.Command, types ...*routing.Type) (bool, error) {
	if len(types) == 0 {
		return false, ErrNoCandidateTypes
	}

	registry, err := routing.NewRegistry(types...)
	if err != nil {
		return false, err
	}

	return NewDispatcher(registry).run(context.Background(), cmd)
}

// RunArgs parses the process arguments after the program name and runs the command
// against the given types.
func RunArgs(types ...*routing.Type) (bool, error) {
	cmd, err := command.FromArguments(os.Args[1:]...)
	if err != nil {
		return false, err
	}

	return Run(cmd, types...)
}
