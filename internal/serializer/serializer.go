package serializer

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/leolimasa/leolang/lang/lexer"
)

var (
	serializers = make(Serializers)

	ErrUnknownFormat     = errors.New("unknown token format")
	ErrDecodeUnsupported = errors.New("format cannot be decoded")
)

type Serializers map[string]Serializer

// Serializer is the interface that wraps the basic serialization methods
type Serializer interface {

	// Decode decodes the input into a token stream
	Decode(input []byte) ([]lexer.Token, error)

	// Encode encodes the token stream into the output
	Encode(tokens []lexer.Token, output io.Writer) error
}

// Register registers a serializer under a format name
func Register(format string, serializer Serializer) {
	serializers[format] = serializer
}

// Lookup returns the serializer registered for format
func Lookup(format string) (Serializer, error) {
	if s, ok := serializers[format]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func Encode(format string, tokens []lexer.Token, output io.Writer) error {
	s, err := Lookup(format)
	if err != nil {
		return err
	}
	return s.Encode(tokens, output)
}

func Decode(format string, input []byte) ([]lexer.Token, error) {
	s, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return s.Decode(input)
}

// Formats lists the registered format names in order.
func Formats() []string {
	names := make([]string, 0, len(serializers))
	for name := range serializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
