package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/anoideaopen/commandline/core/routing"
	"github.com/anoideaopen/commandline/core/telemetry"
	"github.com/anoideaopen/commandline/version"
)

// Greeter prints greetings.
type Greeter struct {
	Name  string
	Shout bool
}

// Hello greets name.
func (g *Greeter) Hello(name, greeting string) string {
	return fmt.Sprintf("%s, %s!", greeting, name)
}

// Banner welcomes Name, in capitals when Shout is set.
func (g *Greeter) Banner() string {
	name := g.Name
	if name == "" {
		name = "world"
	}

	banner := "Welcome, " + name
	if g.Shout {
		return strings.ToUpper(banner) + "!"
	}
	return banner + "."
}

// Clock tells the time in a location.
type Clock struct {
	Location *time.Location
}

// NewClock returns a clock for the IANA zone name.
func NewClock(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &Clock{Location: loc}, nil
}

// Now formats the current time with layout.
func (c *Clock) Now(layout string) string {
	return time.Now().In(c.Location).Format(layout)
}

// Sleep waits for d and returns early with the context error.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// system groups static diagnostics of the binary.
type system struct{}

func buildVersion(deps bool) (version.Info, error) {
	return version.Current(deps)
}

func systemEnv(files []string) map[string]string {
	return version.SystemEnv(files...)
}

// traceEnv returns the trace context of the running command as environment
// entries, ready to be passed to a child process.
func traceEnv(ctx context.Context) []string {
	return telemetry.EnvFromCarrier(telemetry.NewTracingHandler(nil).RemoteCarrier(ctx))
}

func satisfies(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

func compareVersions(a, b *semver.Version) int {
	return a.Compare(b)
}

// Builtin returns the commands shipped with the binary.
func Builtin() []*routing.Type {
	return []*routing.Type{
		routing.NewType[Greeter]("Greeter").
			Property("Name", "n").
			Property("Shout", "s").
			Method("Hello",
				routing.Describe("Greet someone"),
				routing.Params(
					routing.Param{Name: "name", Alias: "n"},
					routing.Param{Name: "greeting", Alias: "g", Optional: true, Default: "Hello"},
				),
			).
			Method("Banner", routing.Describe("Print a banner; set /Name and /Shout")),

		routing.NewType[Clock]("Clock").
			Constructor(func() *Clock { return &Clock{Location: time.UTC} }).
			Constructor(NewClock, routing.Param{Name: "zone", Alias: "z"}).
			Method("Now",
				routing.Describe("Print the current time"),
				routing.Params(routing.Param{Name: "layout", Optional: true, Default: time.RFC3339}),
			).
			Method("Sleep",
				routing.Describe("Wait for a duration, e.g. 1.5s or 00:01:30"),
				routing.Params(routing.Param{Name: "duration", Alias: "d"}),
			),

		routing.NewType[system]("System").
			Static("Version", buildVersion,
				routing.Describe("Print build information"),
				routing.Params(routing.Param{Name: "deps", Optional: true}),
			).
			Static("Env", systemEnv,
				routing.Describe("Print system files"),
				routing.Params(routing.Param{Name: "files", Optional: true}),
			).
			Static("TraceEnv", traceEnv,
				routing.Describe("Print the trace context as environment entries"),
			).
			Static("Satisfies", satisfies,
				routing.Describe("Check a version against a constraint"),
				routing.Params(
					routing.Param{Name: "version", Alias: "v"},
					routing.Param{Name: "constraint", Alias: "c"},
				),
			).
			Static("Compare", compareVersions,
				routing.Describe("Compare two versions"),
				routing.Params(routing.Param{Name: "a"}, routing.Param{Name: "b"}),
			),
	}
}
