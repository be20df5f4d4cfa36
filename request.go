package oauth1

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Request is anything that can drive a Serializer with a set of
// already-sorted parameters. Builder calls Serialize exactly once per
// signing pass; implementations must call the Serializer's methods in
// strictly ascending byte order of key (oauth_* parameters occupy their
// sorted position via one call to SerializeOAuthParameters), matching the
// contract documented on Serializer.
type Request interface {
	Serialize(s Serializer)
}

// RequestFunc adapts a plain function to Request.
type RequestFunc func(s Serializer)

// Serialize implements Request.
func (f RequestFunc) Serialize(s Serializer) { f(s) }

// Tagged derives a Request from v's exported fields using `oauth1` struct
// tags, the way encoding/json derives a codec from `json` tags. v may be a
// struct or a pointer to one.
//
// Supported tag forms, comma-separated after the parameter name:
//
//	oauth1:"name"                  serialize as name, value taken as-is
//	oauth1:"name,encoded"          value is already percent-encoded
//	oauth1:"name,option"           field must be a pointer or interface
//	                               type; nil is skipped entirely
//	oauth1:"-"                     field is never serialized (shorthand for
//	                               the "skip" option with no name)
//	oauth1:"name,skip"             field is never serialized
//	oauth1:"name,skip_if=Method"   skip this field when v.Method() bool (or,
//	                               for a pointer receiver, (&v).Method())
//	                               returns true
//
// A field whose type implements fmt.Stringer renders through its String
// method (see toDisplayString), standing in for a per-field "fmt=formatter"
// attribute: there is no separate tag syntax for it because Go already has
// a standard way to ask a value how it wants to be displayed.
//
// The derived plan is cached per reflect.Type on first use: every later
// Tagged call for the same type reuses it without re-walking the struct.
//
// Tagged panics if v's tags are malformed (reserved-prefix key, duplicate
// key, unknown skip_if method); this is the ergonomic entry point for
// callers who already know their struct is well-formed, analogous to
// template.Must. Callers validating a type they do not control (e.g. one
// built from user-supplied configuration) should call NewTagged instead and
// handle the error.
func Tagged(v any) Request {
	req, err := NewTagged(v)
	if err != nil {
		panic(err)
	}
	return req
}

// NewTagged is Tagged's fallible counterpart: it validates v's struct tags
// immediately and returns an error instead of panicking if they are
// malformed. Once a concrete type has been validated (by either NewTagged or
// Tagged), every later Tagged/NewTagged call for that type is infallible,
// matching spec.md's "total on well-formed input" in the steady state — the
// error path exists only for the first, possibly-malformed use of a type.
func NewTagged(v any) (Request, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if _, err := planFor(rv.Type()); err != nil {
		return nil, err
	}
	return &taggedRequest{value: v}, nil
}

type taggedRequest struct {
	value any
}

func (t *taggedRequest) Serialize(s Serializer) {
	rv := reflect.ValueOf(t.value)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	plan, err := planFor(rv.Type())
	if err != nil {
		panic(err)
	}

	i := 0
	for ; i < len(plan.fields) && plan.fields[i].name < "oauth_"; i++ {
		plan.fields[i].serialize(s, t.value, rv)
	}
	SerializeOAuthParameters(s)
	for ; i < len(plan.fields); i++ {
		plan.fields[i].serialize(s, t.value, rv)
	}
}

type fieldPlan struct {
	name         string
	index        int
	encoded      bool
	option       bool
	skip         bool
	skipIfMethod string // "" when no skip_if
}

// skipNow reports whether this field should be omitted from this particular
// serialization, evaluating skip_if against the struct or, if v's Method is
// defined on the pointer, against a pointer to it.
func (f *fieldPlan) skipNow(v any, rv reflect.Value) bool {
	if f.skip {
		return true
	}
	if f.skipIfMethod == "" {
		return false
	}
	method := reflect.ValueOf(v).MethodByName(f.skipIfMethod)
	if !method.IsValid() && rv.CanAddr() {
		method = rv.Addr().MethodByName(f.skipIfMethod)
	}
	if !method.IsValid() {
		panic("oauth1: field " + f.name + " has skip_if referring to undefined method " + f.skipIfMethod)
	}
	out := method.Call(nil)
	return len(out) == 1 && out[0].Kind() == reflect.Bool && out[0].Bool()
}

func (f *fieldPlan) serialize(s Serializer, v any, rv reflect.Value) {
	if f.skipNow(v, rv) {
		return
	}
	fv := rv.Field(f.index)

	if f.option {
		if fv.Kind() != reflect.Ptr && fv.Kind() != reflect.Interface {
			panic("oauth1: field tagged \"option\" must be a pointer or interface type: " + f.name)
		}
		if fv.IsNil() {
			return
		}
		fv = fv.Elem()
	}

	value := fv.Interface()
	if f.encoded {
		s.SerializeParameterEncoded(f.name, value)
	} else {
		s.SerializeParameter(f.name, value)
	}
}

type typePlan struct {
	fields []fieldPlan // sorted ascending by name
}

var requestPlans sync.Map // reflect.Type -> *planEntry

type planEntry struct {
	plan *typePlan
	err  error
}

func planFor(t reflect.Type) (*typePlan, error) {
	if cached, ok := requestPlans.Load(t); ok {
		entry := cached.(*planEntry)
		return entry.plan, entry.err
	}

	plan, err := buildPlan(t)
	entry := &planEntry{plan: plan, err: err}
	actual, _ := requestPlans.LoadOrStore(t, entry)
	loaded := actual.(*planEntry)
	return loaded.plan, loaded.err
}

func buildPlan(t reflect.Type) (*typePlan, error) {
	if t.Kind() != reflect.Struct {
		return nil, errors.Errorf("oauth1: Tagged requires a struct or pointer to struct, got %s", t)
	}

	var fields []fieldPlan
	seen := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		tag, ok := sf.Tag.Lookup("oauth1")
		if !ok {
			continue
		}
		if tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			return nil, errors.Errorf("oauth1: field %s.%s has an empty oauth1 tag name", t, sf.Name)
		}
		if strings.HasPrefix(name, "oauth_") {
			return nil, errors.Errorf("oauth1: field %s.%s uses reserved parameter name %q (the \"oauth_\" prefix is reserved)", t, sf.Name, name)
		}
		if other, dup := seen[name]; dup {
			return nil, errors.Errorf("oauth1: fields %s.%s and %s.%s both tag parameter name %q", t, other, t, sf.Name, name)
		}
		seen[name] = sf.Name

		fp := fieldPlan{name: name, index: i}
		for _, opt := range parts[1:] {
			switch {
			case opt == "encoded":
				fp.encoded = true
			case opt == "option":
				fp.option = true
			case opt == "skip":
				fp.skip = true
			case strings.HasPrefix(opt, "skip_if="):
				method := strings.TrimPrefix(opt, "skip_if=")
				if _, ok := t.MethodByName(method); !ok {
					if _, ok := reflect.PtrTo(t).MethodByName(method); !ok {
						return nil, errors.Errorf("oauth1: field %s.%s has skip_if referring to undefined method %q", t, sf.Name, method)
					}
				}
				fp.skipIfMethod = method
			default:
				return nil, errors.Errorf("oauth1: field %s.%s has unrecognized oauth1 tag option %q", t, sf.Name, opt)
			}
		}
		fields = append(fields, fp)
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].name < fields[j].name })

	return &typePlan{fields: fields}, nil
}
