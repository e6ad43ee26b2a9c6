package graph

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ettle/strcase"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/uptrace/bun"

	clubsetup "github.com/goliatone/go-club-setup"
	"github.com/goliatone/go-club-setup/internal/filter"
)

var (
	uuidType      = reflect.TypeOf(uuid.UUID{})
	timeType      = reflect.TypeOf(time.Time{})
	baseModelType = reflect.TypeOf(bun.BaseModel{})
)

// inputSkip lists keys clients never write.
var inputSkip = []string{"id", "createdAt", "updatedAt"}

var invalidName = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// TypeMapping turns Go models into GraphQL types. Objects are derived from
// json tags and cached per Go type so nested models share one definition.
type TypeMapping struct {
	enums    map[reflect.Type]*graphql.Enum
	objects  map[reflect.Type]*graphql.Object
	inputs   map[string]*graphql.InputObject
	computed map[reflect.Type]graphql.Fields
}

// InputSpec shapes a top level input object.
type InputSpec struct {
	Name     string
	Required []string
	Exclude  []string
}

func newTypeMapping() *TypeMapping {
	m := &TypeMapping{
		enums:    map[reflect.Type]*graphql.Enum{},
		objects:  map[reflect.Type]*graphql.Object{},
		inputs:   map[string]*graphql.InputObject{},
		computed: map[reflect.Type]graphql.Fields{},
	}
	for _, values := range []any{
		clubsetup.SetupStatus("").Values(),
		clubsetup.SetupStep("").Values(),
		clubsetup.ClubType("").Values(),
		clubsetup.SportsType("").Values(),
		clubsetup.AdditionalService("").Values(),
		clubsetup.ResourceService("").Values(),
		clubsetup.ResourceType("").Values(),
		clubsetup.ResourceProperty("").Values(),
		clubsetup.ResourceStatus("").Values(),
		clubsetup.Gender("").Values(),
		clubsetup.LanguageLevel("").Values(),
		clubsetup.PriceType("").Values(),
		clubsetup.PromoPriceType("").Values(),
		clubsetup.ActivityStatus("").Values(),
		clubsetup.MemberStatus("").Values(),
		clubsetup.Permission("").Values(),
		clubsetup.ClubOwnerType("").Values(),
		clubsetup.ExtrasUserType("").Values(),
		clubsetup.ExtrasLimitType("").Values(),
		clubsetup.ExtrasFeature("").Values(),
		clubsetup.Weekday("").Values(),
		[]filter.SortOrder{filter.Asc, filter.Desc},
	} {
		m.registerEnum(values)
	}
	return m
}

// EnumName is the GraphQL name for a stored enum value.
func EnumName(value string) string {
	return strcase.ToSNAKE(invalidName.ReplaceAllString(value, "_"))
}

func (m *TypeMapping) registerEnum(values any) {
	rv := reflect.ValueOf(values)
	t := rv.Type().Elem()
	config := graphql.EnumValueConfigMap{}
	for i := range rv.Len() {
		v := rv.Index(i)
		config[EnumName(v.String())] = &graphql.EnumValueConfig{Value: v.Interface()}
	}
	m.enums[t] = graphql.NewEnum(graphql.EnumConfig{Name: t.Name(), Values: config})
}

// Enum returns the enum registered for the Go type of sample.
func (m *TypeMapping) Enum(sample any) *graphql.Enum {
	return m.enums[reflect.TypeOf(sample)]
}

// Enums lists every registered enum.
func (m *TypeMapping) Enums() []graphql.Type {
	out := make([]graphql.Type, 0, len(m.enums))
	for _, e := range m.enums {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b graphql.Type) int { return strings.Compare(a.Name(), b.Name()) })
	return out
}

// Extend adds resolver backed fields to the object built for sample. Fields
// are merged when the schema resolves the object.
func (m *TypeMapping) Extend(sample any, fields graphql.Fields) {
	t := indirect(reflect.TypeOf(sample))
	if m.computed[t] == nil {
		m.computed[t] = graphql.Fields{}
	}
	for name, f := range fields {
		m.computed[t][name] = f
	}
}

// Object returns the output object for sample, a struct or struct pointer.
func (m *TypeMapping) Object(sample any) *graphql.Object {
	return m.object(indirect(reflect.TypeOf(sample)))
}

func (m *TypeMapping) object(t reflect.Type) *graphql.Object {
	if obj, ok := m.objects[t]; ok {
		return obj
	}
	fields := graphql.Fields{}
	obj := graphql.NewObject(graphql.ObjectConfig{
		Name: t.Name(),
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			for name, f := range m.computed[t] {
				fields[name] = f
			}
			return fields
		}),
	})
	m.objects[t] = obj

	for _, sf := range jsonFields(t) {
		fields[sf.name] = &graphql.Field{Type: m.output(sf.typ, sf.name == "id")}
	}
	return obj
}

func (m *TypeMapping) output(t reflect.Type, id bool) graphql.Output {
	if t.Kind() == reflect.Pointer {
		return m.outputNullable(t.Elem())
	}
	out := m.outputNullable(t)
	switch {
	case id:
		return graphql.NewNonNull(out)
	case t == uuidType, t == timeType:
		return graphql.NewNonNull(out)
	case m.enums[t] != nil:
		return out
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool, reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return graphql.NewNonNull(out)
	}
	return out
}

func (m *TypeMapping) outputNullable(t reflect.Type) graphql.Output {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if scalar := m.scalar(t); scalar != nil {
		return scalar
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return graphql.NewList(m.outputNullable(t.Elem()))
	case reflect.Struct:
		return m.object(t)
	}
	return JSON
}

// Input returns a named input object for sample. Keys listed in Required
// become non-null.
func (m *TypeMapping) Input(sample any, spec InputSpec) *graphql.InputObject {
	t := indirect(reflect.TypeOf(sample))
	if spec.Name == "" {
		spec.Name = inputName(t)
	}
	if in, ok := m.inputs[spec.Name]; ok {
		return in
	}
	fields := graphql.InputObjectConfigFieldMap{}
	in := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: spec.Name,
		Fields: (graphql.InputObjectConfigFieldMapThunk)(func() graphql.InputObjectConfigFieldMap {
			return fields
		}),
	})
	m.inputs[spec.Name] = in

	for _, sf := range jsonFields(t) {
		if slices.Contains(inputSkip, sf.name) || slices.Contains(spec.Exclude, sf.name) || isModel(sf.typ) {
			continue
		}
		var typ graphql.Input = m.input(sf.typ)
		if slices.Contains(spec.Required, sf.name) {
			typ = graphql.NewNonNull(typ)
		}
		fields[sf.name] = &graphql.InputObjectFieldConfig{Type: typ}
	}
	return in
}

func (m *TypeMapping) input(t reflect.Type) graphql.Input {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if scalar := m.scalar(t); scalar != nil {
		return scalar
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return graphql.NewList(graphql.NewNonNull(m.input(t.Elem())))
	case reflect.Struct:
		return m.Input(reflect.New(t).Interface(), InputSpec{})
	}
	return JSON
}

// scalar maps leaf Go types. It returns nil for lists and structs.
func (m *TypeMapping) scalar(t reflect.Type) graphql.Type {
	switch t {
	case uuidType:
		return graphql.ID
	case timeType:
		return graphql.DateTime
	}
	if e, ok := m.enums[t]; ok {
		return e
	}
	switch t.Kind() {
	case reflect.String:
		return graphql.String
	case reflect.Bool:
		return graphql.Boolean
	case reflect.Int, reflect.Int32, reflect.Int64:
		return graphql.Int
	case reflect.Float32, reflect.Float64:
		return graphql.Float
	case reflect.Map, reflect.Interface:
		return JSON
	}
	return nil
}

type structField struct {
	name string
	typ  reflect.Type
}

// jsonFields lists the exported fields of t under their json names.
func jsonFields(t reflect.Type) []structField {
	out := make([]structField, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Type == baseModelType {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strcase.ToCamel(sf.Name)
		}
		out = append(out, structField{name: name, typ: sf.Type})
	}
	return out
}

// isModel reports whether t points at a persisted model, i.e. a relation.
func isModel(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.NumField() == 0 {
		return false
	}
	return t.Field(0).Type == baseModelType
}

func inputName(t reflect.Type) string {
	if strings.HasSuffix(t.Name(), "Input") {
		return t.Name()
	}
	return t.Name() + "Input"
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
