package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// All returns every known encoder, ordered from the least to the most efficient.
func All() []Encoder {
	return []Encoder{
		&Base32Encoder{},
		&Base64Encoder{},
		&Base85Encoder{},
		&Base91Encoder{},
		&Base128Encoder{},
		&Base128Encoder{Compact: true},
		&Ascii7Encoder{},
		&RawEncoder{},
	}
}

// ByName finds the encoder with the given name or one-letter code. The name is case-insensitive.
func ByName(name string) (Encoder, error) {
	for _, e := range All() {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder: %q", name)
}

// Names lists the names of all encoders.
func Names() []string {
	res := make([]string, 0)
	for _, e := range All() {
		res = append(res, e.Name())
	}
	return res
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
