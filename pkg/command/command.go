// Package command defines the vector shell's command table and parses input
// lines against it.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape describes the argument shape a command accepts.
type Shape int

const (
	None Shape = iota
	Index
	Value
	IndexValue
)

// Spec describes one shell command: its canonical name, accepted aliases,
// argument shape, and the summary shown by help.
type Spec struct {
	Name    string
	Aliases []string
	Shape   Shape
	Summary string
}

// Args holds the parsed arguments of a command, with the fields the command's
// shape calls for filled in.
type Args struct {
	Index int
	Value string
}

var table = []Spec{
	{Name: "help", Shape: None, Summary: "List available commands"},
	{Name: "exit", Aliases: []string{"quit", "q"}, Shape: None, Summary: "Exit vector shell"},
	{Name: "init", Shape: None, Summary: "Initialize new empty vector"},
	{Name: "size", Shape: None, Summary: "Get current vector size"},
	{Name: "ls", Aliases: []string{"print", "dump"}, Shape: None, Summary: "Get all vector contents"},
	{Name: "set", Shape: IndexValue, Summary: "Set <value> at index <i>"},
	{Name: "get", Shape: Index, Summary: "Get the value at index <i>"},
	{Name: "insert", Shape: IndexValue, Summary: "Insert <value> into index <i>"},
	{Name: "remove", Shape: Index, Summary: "Remove the value at index <i>"},
	{Name: "push", Shape: Value, Summary: "Push <value> to end of vector"},
	{Name: "pop", Shape: None, Summary: "Remove the value at end of vector"},
}

// Split breaks an input line into a command name and its argument tokens.
// Values are single whitespace-delimited tokens; there is no quoting.
func Split(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Lookup resolves a command name or alias to its Spec.
func Lookup(name string) (Spec, bool) {
	for _, spec := range table {
		if spec.Name == name {
			return spec, true
		}
		for _, alias := range spec.Aliases {
			if alias == name {
				return spec, true
			}
		}
	}
	return Spec{}, false
}

// Parse validates tokens against the spec's argument shape. On success the
// returned Args carries the index and/or value the shape calls for; on
// failure the error describes the expected format.
func Parse(spec Spec, tokens []string) (Args, error) {
	switch spec.Shape {
	case None:
		if len(tokens) != 0 {
			return Args{}, usageError(spec)
		}
		return Args{}, nil

	case Index:
		if len(tokens) != 1 {
			return Args{}, usageError(spec)
		}
		i, err := strconv.Atoi(tokens[0])
		if err != nil {
			return Args{}, usageError(spec)
		}
		return Args{Index: i}, nil

	case Value:
		if len(tokens) != 1 {
			return Args{}, usageError(spec)
		}
		return Args{Value: tokens[0]}, nil

	case IndexValue:
		if len(tokens) != 2 {
			return Args{}, usageError(spec)
		}
		i, err := strconv.Atoi(tokens[0])
		if err != nil {
			return Args{}, usageError(spec)
		}
		return Args{Index: i, Value: tokens[1]}, nil
	}

	return Args{}, usageError(spec)
}

// Help returns one formatted line per command, aligned for display.
func Help() []string {
	lines := make([]string, 0, len(table))
	for _, spec := range table {
		lines = append(lines, fmt.Sprintf("%-20s%s", spec.display(), spec.Summary))
	}
	return lines
}

func usageError(spec Spec) error {
	return fmt.Errorf("use format `%s%s`", spec.Name, spec.placeholders())
}

// display is the left column of the help output: the name with its aliases
// and argument placeholders.
func (s Spec) display() string {
	names := strings.Join(append([]string{s.Name}, s.Aliases...), "/")
	return names + s.placeholders()
}

func (s Spec) placeholders() string {
	switch s.Shape {
	case Index:
		return " <i>"
	case Value:
		return " <value>"
	case IndexValue:
		return " <i> <value>"
	default:
		return ""
	}
}
