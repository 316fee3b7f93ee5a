package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Pass the location of the file to the decoder, so files in subdirectories may be referenced
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream and parses YAML segments one after another, using the provided decode
// options. This allows you to have multiple individual YAML segments within one physical file / input
// stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key of the segment to a command (by name) or an option group (by
// its short description, case-insensitive) and unmarshals the value into the struct backing it. E.g. the
// top level yaml line "encode:" is matched to the command named "encode" and "general:" to the group
// "General".
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		target, err := y.find(name)
		if err != nil {
			return err
		}

		log.Tracef("Loading configuration for %q into %T", name, target)
		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "Invalid configuration for %q", name)
		}
	}
	return nil
}

// find returns the data (a pointer to a struct) behind the command or group with the given name
func (y *YamlParser) find(name string) (interface{}, error) {
	if command := y.parser.Find(name); command != nil {
		return groupData(command.Group), nil
	}

	for _, group := range y.parser.Groups() {
		if strings.EqualFold(group.ShortDescription, name) {
			return groupData(group), nil
		}
	}

	return nil, errors.WithStack(&flags.Error{
		Type:    flags.ErrUnknownGroup,
		Message: fmt.Sprintf("could not find option command or group '%s'", name),
	})
}

// groupData reads the unexported data field of a flags.Group. The flags library does not allow direct
// access to the underlying data structure, so reflection is the only way to get to it.
func groupData(group *flags.Group) interface{} {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
