package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/pipegrid/pkg/errors"
	"github.com/matzehuels/pipegrid/pkg/flow"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// Format identifies a diagram encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Diagram is a named list of placed parts.
type Diagram struct {
	Name  string `json:"name,omitempty" toml:"name"`
	Parts []Part `json:"parts" toml:"part" validate:"dive"`
}

// Part is the wire form of a placed part.
type Part struct {
	X        int    `json:"x" toml:"x"`
	Y        int    `json:"y" toml:"y"`
	Type     string `json:"type" toml:"type" validate:"required,max=64"`
	Rotation int    `json:"rotation,omitempty" toml:"rotation" validate:"oneof=0 90 180 270"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FlowParts converts the diagram into engine parts, in order.
func (d *Diagram) FlowParts() []flow.Part {
	out := make([]flow.Part, len(d.Parts))
	for i, p := range d.Parts {
		out[i] = flow.Part{X: p.X, Y: p.Y, Type: p.Type, Rotation: p.Rotation}
	}
	return out
}

// Validate checks field constraints and rejects duplicate parts.
func (d *Diagram) Validate() error {
	if err := validate.Struct(d); err != nil {
		return formatValidationErrors(err)
	}
	seen := make(map[flow.Identity]int, len(d.Parts))
	for i, p := range d.FlowParts() {
		id := p.Identity()
		if j, dup := seen[id]; dup {
			return errors.New(errors.ErrCodeInvalidDiagram, "parts %d and %d are both %s", j, i, id)
		}
		seen[id] = i
	}
	return nil
}

// Check validates d and resolves every part type against reg. It returns
// one error per unknown type, or nil.
func Check(d *Diagram, reg parts.Registry) []error {
	if err := d.Validate(); err != nil {
		return []error{err}
	}
	var errs []error
	for i, p := range d.Parts {
		if _, ok := reg.Lookup(p.Type); !ok {
			errs = append(errs, errors.New(errors.ErrCodeUnknownPartType, "part %d at (%d,%d): unknown type %q", i, p.X, p.Y, p.Type))
		}
	}
	return errs
}

// Read decodes and validates a diagram from r.
func Read(r io.Reader, format Format) (*Diagram, error) {
	var d Diagram
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode json")
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDiagram, "unknown keys: %v", undecoded)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q", format)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile reads a diagram file, choosing the format from its extension.
func ReadFile(path string) (*Diagram, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Read(bytes.NewReader(data), FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// FormatFromPath returns the format implied by the file extension. Anything
// other than .toml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

func formatValidationErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidDiagram, err, "validate")
	}
	msgs := make([]string, 0, len(verrs))
	code := errors.ErrCodeInvalidDiagram
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			code = errors.ErrCodeInvalidRotation
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, got %v", fe.Namespace(), fe.Param(), fe.Value()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s exceeds %s characters", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(code, "%s", strings.Join(msgs, "; "))
}
