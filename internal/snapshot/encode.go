package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CBOR Format = "cbor"
)

// cborMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same
// snapshot always encodes to the same bytes
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseFormat validates a format name; an empty name means JSON
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return JSON, nil
	case JSON, YAML, CBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or cbor)", name)
	}
}

// ContentType returns the MIME type of the encoding
func (f Format) ContentType() string {
	switch f {
	case YAML:
		return "application/yaml"
	case CBOR:
		return "application/cbor"
	default:
		return "application/json"
	}
}

// Encode writes v to w in format f
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case CBOR:
		return cborMode.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
