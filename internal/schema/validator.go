package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var builtinFS embed.FS

// Short names of the built-in schemas.
const (
	AssymetricWalletKey = "assymetricWalletKey"
	MnemonicWalletKey   = "mnemonicWalletKey"
	DIDWalletKey        = "didWalletKey"
)

// Builtin maps the short name of each built-in schema to its $id.
var Builtin = map[string]string{
	AssymetricWalletKey: "https://ghdid.dev/schemas/wallet/assymetricWalletKey.json",
	MnemonicWalletKey:   "https://ghdid.dev/schemas/wallet/mnemonicWalletKey.json",
	DIDWalletKey:        "https://ghdid.dev/schemas/wallet/didWalletKey.json",
}

var (
	// ErrUnknownSchema is returned when validating against an id that was never registered.
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrMissingSchemaID is returned by AddSchema when the document has no $id or id.
	ErrMissingSchemaID = errors.New("schema has no $id")

	// ErrSchemaExists is returned by AddSchema when the id is already registered.
	ErrSchemaExists = errors.New("schema already registered")
)

// Error is a single validation failure.
type Error struct {
	// InstanceLocation is a JSON pointer into the validated instance ("" is the root).
	InstanceLocation string `json:"instanceLocation"`
	// Keyword is the failing schema keyword path, e.g. "required".
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

func (e Error) String() string {
	loc := e.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + e.Message
}

// Result is the outcome of validating one instance.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

// Validator holds compiled schemas keyed by id.
// It is safe for concurrent use.
type Validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	docs     map[string]any
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewValidator returns a Validator with the built-in wallet key schemas registered.
func NewValidator() (*Validator, error) {
	v := &Validator{
		compiler: jsonschema.NewCompiler(),
		docs:     make(map[string]any),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}

	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := builtinFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "no schema found for %s", name)
		}
		id, err := v.AddSchema(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to register schema %s", name)
		}
		if id != Builtin[name] {
			return nil, errors.Errorf("schema %s has id %q, want %q", name, id, Builtin[name])
		}
	}

	return v, nil
}

// AddSchema compiles and registers a schema document under its $id (or draft-04 id).
// All schemas referenced by later validations must be added first.
func (v *Validator) AddSchema(raw []byte) (string, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse schema")
	}

	id := schemaID(doc)
	if id == "" {
		return "", ErrMissingSchemaID
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[id]; ok {
		return "", errors.Wrap(ErrSchemaExists, id)
	}
	// A resource added to a compiler cannot be removed, so the document is
	// compiled against a scratch compiler before v.compiler sees it.
	if err := v.checkCompile(id, doc); err != nil {
		return "", err
	}

	if err := v.compiler.AddResource(id, doc); err != nil {
		return "", errors.Wrapf(err, "failed to add schema %s", id)
	}
	compiled, err := v.compiler.Compile(id)
	if err != nil {
		return "", errors.Wrapf(err, "failed to compile schema %s", id)
	}
	v.docs[id] = doc
	v.schemas[id] = compiled

	return id, nil
}

// checkCompile compiles doc together with every accepted document.
// Callers must hold v.mu.
func (v *Validator) checkCompile(id string, doc any) error {
	c := jsonschema.NewCompiler()
	for known, d := range v.docs {
		if err := c.AddResource(known, d); err != nil {
			return errors.Wrapf(err, "failed to add schema %s", known)
		}
	}
	if err := c.AddResource(id, doc); err != nil {
		return errors.Wrapf(err, "failed to add schema %s", id)
	}
	if _, err := c.Compile(id); err != nil {
		return errors.Wrapf(err, "failed to compile schema %s", id)
	}
	return nil
}

// Schemas returns the ids of all registered schemas in sorted order.
func (v *Validator) Schemas() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	ids := make([]string, 0, len(v.schemas))
	for id := range v.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks instance against the schema named by schema, which may be a
// built-in short name or a registered id.
//
// The instance is marshalled to JSON and parsed back first, so only what
// encoding/json would emit is validated. Values JSON cannot represent (channels,
// funcs, NaN) make Validate return an error.
func (v *Validator) Validate(instance any, schema string) (*Result, error) {
	data, err := json.Marshal(instance)
	if err != nil {
		return nil, errors.Wrap(err, "instance is not JSON compatible")
	}
	return v.ValidateJSON(data, schema)
}

// ValidateJSON is Validate for an already encoded JSON document.
func (v *Validator) ValidateJSON(data []byte, schema string) (*Result, error) {
	compiled, err := v.lookup(schema)
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse instance")
	}

	if err := compiled.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, errors.Wrap(err, "validation failed")
		}
		return &Result{Valid: false, Errors: v.flatten(ve, nil)}, nil
	}

	return &Result{Valid: true, Errors: []Error{}}, nil
}

// IsValid reports whether instance adheres to the schema. Unknown schemas and
// instances that cannot be encoded count as invalid.
func (v *Validator) IsValid(instance any, schema string) bool {
	res, err := v.Validate(instance, schema)
	if err != nil {
		return false
	}
	return len(res.Errors) == 0
}

// Resolve maps a short name or id to the registered schema id.
func (v *Validator) Resolve(schema string) (string, error) {
	id := schema
	if full, ok := Builtin[schema]; ok {
		id = full
	}

	v.mu.RLock()
	_, ok := v.schemas[id]
	v.mu.RUnlock()
	if !ok {
		return "", errors.Wrap(ErrUnknownSchema, schema)
	}
	return id, nil
}

func (v *Validator) lookup(schema string) (*jsonschema.Schema, error) {
	id, err := v.Resolve(schema)
	if err != nil {
		return nil, err
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.schemas[id], nil
}

// flatten collects the leaf causes of a validation error.
func (v *Validator) flatten(ve *jsonschema.ValidationError, out []Error) []Error {
	if len(ve.Causes) == 0 {
		e := Error{InstanceLocation: jsonPointer(ve.InstanceLocation)}
		if ve.ErrorKind != nil {
			e.Keyword = strings.Join(ve.ErrorKind.KeywordPath(), "/")
			e.Message = ve.ErrorKind.LocalizedString(v.printer)
		}
		return append(out, e)
	}
	for _, cause := range ve.Causes {
		out = v.flatten(cause, out)
	}
	return out
}

func schemaID(doc any) string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"$id", "id"} {
		if id, ok := obj[key].(string); ok && id != "" {
			return id
		}
	}
	return ""
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func jsonPointer(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(tok))
	}
	return sb.String()
}
