package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// DecodeObject reads a single JSON object from r.
// Numbers are kept as json.Number so integers and floats stay distinguishable.
// Any other JSON value, malformed input, an empty body or trailing data yields
// an error wrapping domain.ErrInvalidJSON.
func DecodeObject(r io.Reader) (map[string]any, error) {
	if r == nil {
		return nil, domain.ErrInvalidJSON
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after object", domain.ErrInvalidJSON)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body is not an object", domain.ErrInvalidJSON)
	}
	return obj, nil
}
