// Package scenariofile reads scenarios written in the line-oriented scenario format:
//
//	# comment
//	DRONE <id> <model> <maxPayload>
//	COLIS <id> <weight> <destination, rest of the line>
//
// Blank lines and lines starting with '#' are skipped.
package scenariofile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"dronefleet/internal/core/ports"
)

// Scenario keywords.
const (
	DroneKeyword  = "DRONE"
	ParcelKeyword = "COLIS"
)

// Parse reads every descriptor of r in order.
func Parse(r io.Reader) ([]ports.ScenarioRecord, error) {
	var records []ports.ScenarioRecord

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		record, ok, err := ParseLine(line, scanner.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
	}

	return records, nil
}

// ParseLine parses one line of a scenario. ok is false for blank and comment lines.
// Errors wrap ports.ErrMalformedLine.
func ParseLine(line int, text string) (record ports.ScenarioRecord, ok bool, err error) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ports.ScenarioRecord{}, false, nil
	}

	malformed := func(reason string) error {
		return fmt.Errorf("%w: line %d: %s", ports.ErrMalformedLine, line, reason)
	}

	keyword, rest := nextField(text)
	switch keyword {
	case DroneKeyword:
		idField, rest := nextField(rest)
		model, rest := nextField(rest)
		// Fields after the payload are ignored.
		payloadField, _ := nextField(rest)

		id, err := strconv.Atoi(idField)
		if err != nil {
			return ports.ScenarioRecord{}, false, malformed("drone id is not an integer")
		}
		if model == "" {
			return ports.ScenarioRecord{}, false, malformed("drone model is missing")
		}
		maxPayload, err := strconv.ParseFloat(payloadField, 64)
		if err != nil {
			return ports.ScenarioRecord{}, false, malformed("drone max payload is not a number")
		}

		return ports.ScenarioRecord{
			Kind:       ports.DroneRecord,
			Line:       line,
			ID:         id,
			Model:      model,
			MaxPayload: maxPayload,
		}, true, nil

	case ParcelKeyword:
		idField, rest := nextField(rest)
		weightField, destination := nextField(rest)

		id, err := strconv.Atoi(idField)
		if err != nil {
			return ports.ScenarioRecord{}, false, malformed("package id is not an integer")
		}
		weight, err := strconv.ParseFloat(weightField, 64)
		if err != nil {
			return ports.ScenarioRecord{}, false, malformed("package weight is not a number")
		}

		return ports.ScenarioRecord{
			Kind:        ports.ParcelRecord,
			Line:        line,
			ID:          id,
			Weight:      weight,
			Destination: destination,
		}, true, nil

	default:
		return ports.ScenarioRecord{}, false, malformed("unknown keyword")
	}
}

// nextField splits the first whitespace-separated field off s. rest has its
// leading whitespace removed.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], strings.TrimLeftFunc(s[end:], unicode.IsSpace)
}
