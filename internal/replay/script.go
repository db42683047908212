// Package replay drives a headless workspace from a line-oriented script.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrSyntax is wrapped by every script parse error.
var ErrSyntax = errors.New("replay syntax error")

// Command is one parsed script line.
type Command struct {
	Line  int
	Name  string
	Args  []string
	Flags map[string]string // "--shift" is stored as "shift": ""
}

// Flag reports whether the flag was given.
func (c Command) Flag(name string) bool {
	_, ok := c.Flags[name]
	return ok
}

// Parse reads a script. Blank lines and lines starting with '#' are skipped.
// Arguments split on whitespace; double-quoted arguments use Go escapes.
// The "type" command takes the rest of the line as a single argument.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseLine(line int, text string) (Command, error) {
	name, rest := cutSpace(text)
	cmd := Command{Line: line, Name: strings.ToLower(name), Flags: map[string]string{}}

	if cmd.Name == "type" {
		arg, err := unquote(strings.TrimSpace(rest))
		if err != nil {
			return Command{}, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
		}
		cmd.Args = []string{arg}
		return cmd, nil
	}

	tokens, err := tokenize(rest)
	if err != nil {
		return Command{}, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
	}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") {
			cmd.Args = append(cmd.Args, tok)
			continue
		}
		key, value, hasValue := strings.Cut(strings.TrimPrefix(tok, "--"), "=")
		if !hasValue && takesValue(key) {
			if i+1 >= len(tokens) {
				return Command{}, fmt.Errorf("%w: line %d: --%s needs a value", ErrSyntax, line, key)
			}
			i++
			value = tokens[i]
		}
		cmd.Flags[key] = value
	}
	return cmd, nil
}

func takesValue(flag string) bool {
	return flag == "from" || flag == "to"
}

func tokenize(s string) ([]string, error) {
	var out []string
	s = strings.TrimSpace(s)
	for s != "" {
		if s[0] == '"' {
			end := closingQuote(s)
			if end < 0 {
				return nil, errors.New("unterminated quote")
			}
			tok, err := strconv.Unquote(s[:end+1])
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			s = strings.TrimSpace(s[end+1:])
			continue
		}
		tok, rest := cutSpace(s)
		out = append(out, tok)
		s = strings.TrimSpace(rest)
	}
	return out, nil
}

func cutSpace(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

func unquote(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		return strconv.Unquote(s)
	}
	return s, nil
}
