// Package errors provides the diagnostics side of the rt command line: the
// append-only ErrorContext that collects one record per failed file, the
// ConversionError failure signal, and a parser that turns the stderr of the
// external compiler into structured errors.
//
// The compiler may report a failure either as a single JSON object
//
//	{"message": "...", "line": 3, "column": 5, "startOffset": 10, "endOffset": 14}
//
// or as plain text lines such as "file.rt:3:5: message", "message at line 3
// col 5" or "message (offset 10-14)". Unrecognised output becomes a message
// without position.
package errors

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// ParsedError represents a parsed error with structured information
type ParsedError struct {
	File        string `json:"file,omitempty"`
	Message     string `json:"message"`
	Line        *int   `json:"line,omitempty"`
	Column      *int   `json:"column,omitempty"`
	StartOffset *int   `json:"startOffset,omitempty"`
	EndOffset   *int   `json:"endOffset,omitempty"`
	RawError    string `json:"-"`
}

// ErrorParser parses compiler output into structured errors
type ErrorParser struct {
	patterns []errorPattern
	offsets  *regexp.Regexp
}

type errorPattern struct {
	regex       *regexp.Regexp
	parseFields func(matches []string) (file string, line int, column int, message string)
}

// NewErrorParser creates a new error parser
func NewErrorParser() *ErrorParser {
	return &ErrorParser{
		patterns: buildPatterns(),
		offsets:  regexp.MustCompile(`\s*\(offset (\d+)-(\d+)\)$`),
	}
}

// ParseError parses compiler output into structured errors, one per
// recognised line. JSON output yields exactly one error.
func (ep *ErrorParser) ParseError(output string) []*ParsedError {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		if err := parseJSON(trimmed); err != nil {
			return []*ParsedError{err}
		}
	}

	var errors []*ParsedError
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		errors = append(errors, ep.parseLine(line))
	}

	return errors
}

// ParseConversionError returns the first error found in output as a
// ConversionError, or nil when output is empty.
func (ep *ErrorParser) ParseConversionError(output string, cause error) *ConversionError {
	parsed := ep.ParseError(output)
	if len(parsed) == 0 {
		return nil
	}

	first := parsed[0]
	return &ConversionError{
		Message:     first.Message,
		Line:        first.Line,
		Column:      first.Column,
		StartOffset: first.StartOffset,
		EndOffset:   first.EndOffset,
		Cause:       cause,
	}
}

func (ep *ErrorParser) parseLine(line string) *ParsedError {
	parsed := &ParsedError{RawError: line}

	body := line
	if m := ep.offsets.FindStringSubmatch(body); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		parsed.StartOffset = Int(start)
		parsed.EndOffset = Int(end)
		body = strings.TrimSpace(body[:len(body)-len(m[0])])
	}

	for _, pattern := range ep.patterns {
		matches := pattern.regex.FindStringSubmatch(body)
		if matches == nil {
			continue
		}
		file, lineNum, column, message := pattern.parseFields(matches)
		parsed.File = file
		parsed.Message = message
		if lineNum > 0 {
			parsed.Line = Int(lineNum)
		}
		if column > 0 {
			parsed.Column = Int(column)
		}
		return parsed
	}

	parsed.Message = body
	return parsed
}

func parseJSON(text string) *ParsedError {
	var payload struct {
		Message     string `json:"message"`
		File        string `json:"file"`
		Line        *int   `json:"line"`
		Column      *int   `json:"column"`
		StartOffset *int   `json:"startOffset"`
		EndOffset   *int   `json:"endOffset"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil || payload.Message == "" {
		return nil
	}

	return &ParsedError{
		File:        payload.File,
		Message:     payload.Message,
		Line:        payload.Line,
		Column:      payload.Column,
		StartOffset: payload.StartOffset,
		EndOffset:   payload.EndOffset,
		RawError:    text,
	}
}

func buildPatterns() []errorPattern {
	return []errorPattern{
		{
			// file.rt:3:5: message
			regex: regexp.MustCompile(`^(.+?):(\d+):(\d+): (.+)$`),
			parseFields: func(matches []string) (string, int, int, string) {
				line, _ := strconv.Atoi(matches[2])
				column, _ := strconv.Atoi(matches[3])
				return matches[1], line, column, matches[4]
			},
		},
		{
			// file.rt:3: message
			regex: regexp.MustCompile(`^(.+?):(\d+): (.+)$`),
			parseFields: func(matches []string) (string, int, int, string) {
				line, _ := strconv.Atoi(matches[2])
				return matches[1], line, 0, matches[3]
			},
		},
		{
			// message at line 3 col 5
			regex: regexp.MustCompile(`^(.+?),? at line (\d+)(?:,? col(?:umn)? (\d+))?$`),
			parseFields: func(matches []string) (string, int, int, string) {
				line, _ := strconv.Atoi(matches[2])
				column, _ := strconv.Atoi(matches[3])
				return "", line, column, matches[1]
			},
		},
		{
			// message (line 3, column 5)
			regex: regexp.MustCompile(`^(.+?) \(line (\d+)(?:, column (\d+))?\)$`),
			parseFields: func(matches []string) (string, int, int, string) {
				line, _ := strconv.Atoi(matches[2])
				column, _ := strconv.Atoi(matches[3])
				return "", line, column, matches[1]
			},
		},
	}
}
