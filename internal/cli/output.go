package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/anoideaopen/commandline/core/types"
	"github.com/anoideaopen/commandline/internal/config"
	"go.yaml.in/yaml/v3"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// writeOutputs prints each result of a command on its own in the given format.
// Strings are printed as they are.
func writeOutputs(w io.Writer, format string, outputs []any) error {
	for _, output := range outputs {
		b, err := encode(format, output)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		if _, err = fmt.Fprintln(w, string(b)); err != nil {
			return err
		}
	}

	return nil
}

func encode(format string, output any) ([]byte, error) {
	switch v := output.(type) {
	case string:
		return []byte(v), nil
	case types.BytesEncoder:
		return v.EncodeToBytes()
	case proto.Message:
		return protojson.MarshalOptions{Multiline: true}.Marshal(v)
	}

	if format == config.OutputYAML {
		b, err := yaml.Marshal(output)
		if err != nil {
			return nil, err
		}
		return trimNewline(b), nil
	}

	return json.MarshalIndent(output, "", "  ")
}

func trimNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		return b[:n-1]
	}
	return b
}
