package logbridge

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Envelope is the transport unit for one formatted record.
type Envelope struct {
	Type    string `json:"type" jsonschema:"enum=log,description=Message kind tag for host-side routing"`
	Level   string `json:"level" jsonschema:"enum=ERROR,enum=WARN,enum=INFO,enum=DEBUG,enum=TRACE"`
	Message string `json:"message" jsonschema:"description=Prefixed log line"`
}

// NewEnvelope wraps a formatted line in a log envelope.
func NewEnvelope(level Severity, formatted string) Envelope {
	return Envelope{
		Type:    KindLog,
		Level:   level.String(),
		Message: formatted,
	}
}

// Map returns the envelope as a three-key mapping, for hosts that route on
// generic structured values rather than Go types.
func (e Envelope) Map() map[string]string {
	return map[string]string{
		"type":    e.Type,
		"level":   e.Level,
		"message": e.Message,
	}
}

// EnvelopeSchema returns the JSON schema of a single envelope.
func EnvelopeSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Envelope{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmtErrorf("failed to marshal envelope schema: %w", err)
	}
	return data, nil
}
