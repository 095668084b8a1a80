package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Op is an operation of a script step.
type Op int

// Operations of script steps.
const (
	OpInsert Op = iota
	OpDelete
	OpSearch
	OpExpect
)

var opNames = map[string]Op{
	"insert": OpInsert,
	"delete": OpDelete,
	"search": OpSearch,
	"expect": OpExpect,
}

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	case OpExpect:
		return "expect"
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single operation, applied to a list of keys.
type Step struct {
	Op   Op
	Keys []int
}

// UnmarshalYAML reads a step from a single-entry mapping, e.g.
// `insert: [1, 2, 3]`.
func (s *Step) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string][]int
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: expected exactly one operation, have %d", ErrMalformedStep, len(raw))
	}
	for name, keys := range raw {
		op, ok := opNames[name]
		if !ok {
			return fmt.Errorf("%w: unknown operation %q", ErrMalformedStep, name)
		}
		s.Op, s.Keys = op, keys
	}
	return nil
}

// MarshalYAML writes a step as a single-entry mapping.
func (s Step) MarshalYAML() (interface{}, error) {
	keys := s.Keys
	if keys == nil {
		keys = []int{}
	}
	return map[string][]int{s.Op.String(): keys}, nil
}

// Parse reads a YAML script from r.
func Parse(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("cannot parse script: %w", err)
	}
	return s, nil
}

// Load reads a YAML script from file path. Scripts without a name are named
// after their file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	tracer().Debugf("loaded script %q with %d steps", s.Name, len(s.Steps))
	return s, nil
}

// ReadKeys reads whitespace-separated integer keys from r. Text from a '#' to
// the end of a line is ignored.
func ReadKeys(r io.Reader) ([]int, error) {
	var keys []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			k, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedKeys, line, field)
			}
			keys = append(keys, k)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
