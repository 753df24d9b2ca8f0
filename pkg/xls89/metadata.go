package xls89

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// URL is an XLS-89 url entry: u is the url itself, c a category tag, t a
// display title.
type URL struct {
	U string `json:"u"`
	C string `json:"c,omitempty"`
	T string `json:"t,omitempty"`
}

// KeyValue is a free-form additional-info entry.
type KeyValue struct {
	Key   string
	Value string
}

// Fields is the structured authoring mode for XLS-89 metadata. Every
// field is optional; empty values are dropped from the built object.
type Fields struct {
	Ticker         string
	Name           string
	Description    string
	IconURL        string
	AccessControl  string
	AssetClass     string
	IssuerName     string
	URLs           []URL
	AdditionalInfo []KeyValue
}

// BuildObject assembles the sparse metadata object from structured
// fields. URL entries without a url and additional-info entries missing
// a key or value are dropped. Returns nil when nothing remains, meaning
// the issuance gets no metadata field.
func BuildObject(fields Fields) map[string]any {
	object := map[string]any{}

	if fields.Ticker != "" {
		object["t"] = fields.Ticker
	}
	if fields.Name != "" {
		object["n"] = fields.Name
	}
	if fields.Description != "" {
		object["d"] = fields.Description
	}
	if fields.IconURL != "" {
		object["i"] = fields.IconURL
	}
	if fields.AccessControl != "" {
		object["ac"] = fields.AccessControl
	}
	if fields.AssetClass != "" {
		object["as"] = fields.AssetClass
	}
	if fields.IssuerName != "" {
		object["in"] = fields.IssuerName
	}

	urls := make([]URL, 0, len(fields.URLs))
	for _, entry := range fields.URLs {
		if entry.U != "" {
			urls = append(urls, entry)
		}
	}
	if len(urls) > 0 {
		object["us"] = urls
	}

	additionalInfo := map[string]string{}
	for _, entry := range fields.AdditionalInfo {
		if entry.Key != "" && entry.Value != "" {
			additionalInfo[entry.Key] = entry.Value
		}
	}
	if len(additionalInfo) > 0 {
		object["ai"] = additionalInfo
	}

	if len(object) == 0 {
		return nil
	}
	return object
}

// ParseRaw validates a raw JSON metadata document. Blank input means "no
// metadata" and yields nil without error. Anything that is not a JSON
// object (arrays, primitives, null) is rejected.
func ParseRaw(text string) (map[string]any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &FormatError{Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, &FormatError{Message: "metadata must be a JSON object"}
	}
	return object, nil
}

// EncodeHex serializes a metadata object to canonical JSON (sorted keys,
// no HTML escaping) and hex-encodes the UTF-8 bytes in uppercase. A nil
// or empty object yields "", meaning the metadata field is omitted from
// the issuance entirely.
func EncodeHex(object map[string]any) (string, error) {
	if len(object) == 0 {
		return "", nil
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(object); err != nil {
		return "", &FormatError{Message: fmt.Sprintf("failed to serialize metadata: %v", err)}
	}
	serialized := bytes.TrimRight(buffer.Bytes(), "\n")
	return strings.ToUpper(hex.EncodeToString(serialized)), nil
}

// Encode is the structured-mode convenience path: build the object from
// fields, then hex-encode it.
func Encode(fields Fields) (string, error) {
	return EncodeHex(BuildObject(fields))
}

// DecodeHex is the inverse of EncodeHex: hex to UTF-8 bytes to metadata
// object. Used for previewing on-ledger blobs.
func DecodeHex(encoded string) (map[string]any, error) {
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		return nil, nil
	}

	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, &FormatError{Message: fmt.Sprintf("invalid hex: %v", err)}
	}
	return ParseRaw(string(raw))
}
