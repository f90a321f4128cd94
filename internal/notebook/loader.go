package notebook

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

//go:embed sample.json
var sampleBundle []byte

// Load reads and decodes a bundle file. The generator writes either the
// bare bundle or its API envelope {"success": true, "data": {...}};
// both are accepted.
func Load(path string) (*Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	nb, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse notebook %s: %w", path, err)
	}

	nb.Path = path
	return nb, nil
}

// Parse decodes bundle bytes and stamps the content fingerprint.
func Parse(data []byte) (*Notebook, error) {
	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	payload := data
	if envelope.Success != nil && len(envelope.Data) > 0 {
		payload = envelope.Data
	}

	var nb Notebook
	if err := json.Unmarshal(payload, &nb); err != nil {
		return nil, err
	}

	nb.Fingerprint = fingerprint(data)
	return &nb, nil
}

// Sample returns the embedded demo bundle, used when no file is given.
func Sample() *Notebook {
	nb, err := Parse(sampleBundle)
	if err != nil {
		// The sample ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded sample bundle invalid: %v", err))
	}
	return nb
}

// fingerprint hashes the raw bundle bytes. Used as the library identity
// so re-opening an unchanged bundle never duplicates an entry.
func fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
