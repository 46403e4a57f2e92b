package telemetry

import "go.opentelemetry.io/otel/attribute"

type MethodTypeNum int

func (t MethodTypeNum) String() string {
	switch t {
	case MethodInstance:
		return "instance"
	case MethodStatic:
		return "static"
	case MethodUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	MethodUnknown MethodTypeNum = iota
	MethodInstance
	MethodStatic
)

func MethodType(t MethodTypeNum) attribute.KeyValue {
	return attribute.String("method_type", t.String())
}

func DispatchID(id string) attribute.KeyValue {
	return attribute.String("dispatch_id", id)
}

func Command(name string) attribute.KeyValue {
	return attribute.String("command", name)
}

func TypeName(name string) attribute.KeyValue {
	return attribute.String("type", name)
}

func Method(signature string) attribute.KeyValue {
	return attribute.String("method", signature)
}

func Candidates(n int) attribute.KeyValue {
	return attribute.Int("candidates", n)
}

func Success(ok bool) attribute.KeyValue {
	return attribute.Bool("success", ok)
}
