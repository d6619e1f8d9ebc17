package kit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the per-message configuration shipped inside a kit. It is
// decoded once when the kit is opened and treated as immutable afterwards.
type Manifest struct {
	// Assembler names the plugin that builds the message. Empty means the
	// default markdown assembler.
	Assembler string `yaml:"assembler"`

	// Path is the kit entry holding the message source text.
	Path string `yaml:"path"`

	// Charset optionally names the text encoding of kit entries (IANA name).
	// Entries are decoded to UTF-8 on fetch. Default is utf-8.
	Charset string `yaml:"charset"`

	// Header is the ordered list of header specifications. Order and
	// duplicate field names are preserved through to the wire.
	Header []HeaderSpec `yaml:"header"`

	// Alternatives, Attachments, and Attributes exist so assemblers can
	// reject manifests that request features they do not support. The
	// markdown assembler requires all three to be absent or empty.
	Alternatives []any          `yaml:"alternatives"`
	Attachments  []any          `yaml:"attachments"`
	Attributes   map[string]any `yaml:"attributes"`

	// Markdown assembler options.
	HTMLWrapper    string `yaml:"html_wrapper"`
	TextWrapper    string `yaml:"text_wrapper"`
	Marker         string `yaml:"marker"`
	MungeSignature bool   `yaml:"munge_signature"`
	RenderWrapper  bool   `yaml:"render_wrapper"`
	EncodeEntities bool   `yaml:"encode_entities"`
	SanitizeHTML   bool   `yaml:"sanitize_html"`
}

// HeaderSpec is one manifest header entry: a small ordered mapping holding a
// single field-name key plus optional directive keys (keys starting with a
// colon, such as ":renderer").
type HeaderSpec struct {
	Entries []HeaderEntry
}

// HeaderEntry is one key/value item of a header spec, in document order.
type HeaderEntry struct {
	Key   string
	Value HeaderValue
}

// HeaderValue is either a scalar template string, a structured
// [value, {params}] pair, or an explicit null.
type HeaderValue struct {
	Template   string
	Params     []HeaderParam
	Structured bool
	Null       bool
}

// HeaderParam is a single structured-header parameter, in document order.
type HeaderParam struct {
	Name  string
	Value string
}

// UnmarshalYAML decodes a header spec from its manifest form, preserving the
// document order of keys and of structured parameters.
func (s *HeaderSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: header entry must be a mapping, got %s", ErrManifestInvalid, nodeKind(node))
	}

	s.Entries = make([]HeaderEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value, err := decodeHeaderValue(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("header %q: %w", key, err)
		}
		s.Entries = append(s.Entries, HeaderEntry{Key: key, Value: value})
	}
	return nil
}

func decodeHeaderValue(node *yaml.Node) (HeaderValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return HeaderValue{Null: true}, nil
		}
		return HeaderValue{Template: node.Value}, nil

	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return HeaderValue{}, fmt.Errorf("%w: structured header value must be a [value, params] pair", ErrManifestInvalid)
		}
		valueNode, paramsNode := node.Content[0], node.Content[1]
		if valueNode.Kind != yaml.ScalarNode || paramsNode.Kind != yaml.MappingNode {
			return HeaderValue{}, fmt.Errorf("%w: structured header value must be a [scalar, mapping] pair", ErrManifestInvalid)
		}
		params := make([]HeaderParam, 0, len(paramsNode.Content)/2)
		for i := 0; i+1 < len(paramsNode.Content); i += 2 {
			params = append(params, HeaderParam{
				Name:  paramsNode.Content[i].Value,
				Value: paramsNode.Content[i+1].Value,
			})
		}
		return HeaderValue{Template: valueNode.Value, Params: params, Structured: true}, nil

	default:
		return HeaderValue{}, fmt.Errorf("%w: header value must be a scalar or a [value, params] pair", ErrManifestInvalid)
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
