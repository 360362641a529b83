// Package utils contains parsing helpers for hand-written analysis
// payloads.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors in hand-edited payload
// files: single quotes, trailing commas, unquoted keys, comments, stray
// markdown fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (comments, unquoted keys, optional
// commas) directly into the target schema.
func ParseHJSON(data []byte, schema interface{}) error {
	if err := hjson.Unmarshal(data, schema); err != nil {
		return fmt.Errorf("hjson parse failed: %w", err)
	}
	return nil
}

// SmartParse tries multiple strategies to decode a payload into schema:
// strict JSON first, then repaired JSON, then HJSON as the most lenient
// fallback. Payload files are often written by hand, so strictness is a
// bad default here.
func SmartParse(data []byte, schema interface{}) error {
	if err := json.Unmarshal(data, schema); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(string(data)); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := ParseHJSON(data, schema); err == nil {
		return nil
	}

	return fmt.Errorf("payload is not valid JSON, repairable JSON, or HJSON")
}
