package hxui

import "slices"

// ComponentPart is the root element every component type has.
const ComponentPart = "component"

// DefaultTagName is used for parts declared without a tag.
const DefaultTagName = "div"

// PartDef declares one named region of a component's markup.
type PartDef struct {
	Name    string
	TagName string
}

// SlotDef declares a nested sub-component slot. A nil Renderer means the
// slot is rendered by Passthrough.
type SlotDef struct {
	Name     string
	Many     bool
	Renderer Renderer
}

// Schema is the resolved, immutable vocabulary of a component type: its
// parts, the variants, modifiers and sizes it accepts, and its slots.
//
// Schemas are built with ResolveSchema (or indirectly through Define and
// Extend) and never change afterwards, so one value is shared by every
// instance of the type and by the subtypes derived from it.
type Schema struct {
	parts     map[string]PartDef
	order     []string
	variants  []string
	modifiers []string
	sizes     []string
	slots     map[string]SlotDef
	slotOrder []string
}

// Declaration configures a component type at definition time.
type Declaration func(*definition)

// definition is the mutable state a Declaration writes to. It only exists
// while a type is being defined.
type definition struct {
	schema *Schema
	setup  []SetupFunc
	render RenderFunc
}

// PartOption customizes a part declaration.
type PartOption func(*PartDef)

// Tag sets the default tag name of a part.
func Tag(name string) PartOption {
	return func(p *PartDef) {
		p.TagName = name
	}
}

// Part declares (or redeclares) a part. Redeclaring a part inherited from a
// parent type replaces that part's defaults and leaves the others alone.
//
//	hxui.Part("title", hxui.Tag("h2"))
func Part(name string, opts ...PartOption) Declaration {
	return func(d *definition) {
		def := PartDef{Name: name, TagName: DefaultTagName}
		for _, opt := range opts {
			opt(&def)
		}
		d.schema.definePart(def)
	}
}

// Parts declares several parts with no defaults.
func Parts(names ...string) Declaration {
	return func(d *definition) {
		for _, name := range names {
			Part(name)(d)
		}
	}
}

// Variants adds to the set of accepted variants.
func Variants(values ...string) Declaration {
	return func(d *definition) {
		d.schema.variants = appendUnique(d.schema.variants, values...)
	}
}

// Modifiers adds to the set of accepted modifiers.
func Modifiers(values ...string) Declaration {
	return func(d *definition) {
		d.schema.modifiers = appendUnique(d.schema.modifiers, values...)
	}
}

// Sizes adds to the set of documented sizes. Sizes are not validated.
func Sizes(values ...string) Declaration {
	return func(d *definition) {
		d.schema.sizes = appendUnique(d.schema.sizes, values...)
	}
}

// Slot declares a slot holding at most one sub-component. Without a
// renderer the slot uses Passthrough.
func Slot(name string, renderer ...Renderer) Declaration {
	return slotDecl(name, false, renderer)
}

// SlotMany declares a slot holding any number of sub-components.
func SlotMany(name string, renderer ...Renderer) Declaration {
	return slotDecl(name, true, renderer)
}

func slotDecl(name string, many bool, renderer []Renderer) Declaration {
	return func(d *definition) {
		def := SlotDef{Name: name, Many: many}
		if len(renderer) > 0 {
			def.Renderer = renderer[0]
		}
		if _, ok := d.schema.slots[name]; !ok {
			d.schema.slotOrder = append(d.schema.slotOrder, name)
		}
		d.schema.slots[name] = def
	}
}

// ResolveSchema returns the schema of a type derived from parent with the
// given declarations applied. parent is never modified; a nil parent is the
// root schema, which only holds the component part.
func ResolveSchema(parent *Schema, decls ...Declaration) *Schema {
	d := &definition{schema: parent.clone()}
	for _, decl := range decls {
		decl(d)
	}
	return d.schema
}

func (s *Schema) clone() *Schema {
	if s == nil {
		root := &Schema{
			parts: make(map[string]PartDef),
			slots: make(map[string]SlotDef),
		}
		root.definePart(PartDef{Name: ComponentPart, TagName: DefaultTagName})
		return root
	}
	out := &Schema{
		parts:     make(map[string]PartDef, len(s.parts)),
		order:     slices.Clone(s.order),
		variants:  slices.Clone(s.variants),
		modifiers: slices.Clone(s.modifiers),
		sizes:     slices.Clone(s.sizes),
		slots:     make(map[string]SlotDef, len(s.slots)),
		slotOrder: slices.Clone(s.slotOrder),
	}
	for k, v := range s.parts {
		out.parts[k] = v
	}
	for k, v := range s.slots {
		out.slots[k] = v
	}
	return out
}

func (s *Schema) definePart(def PartDef) {
	if def.TagName == "" {
		def.TagName = DefaultTagName
	}
	if _, ok := s.parts[def.Name]; !ok {
		s.order = append(s.order, def.Name)
	}
	s.parts[def.Name] = def
}

// Part returns the declaration of the named part.
func (s *Schema) Part(name string) (PartDef, bool) {
	def, ok := s.parts[name]
	return def, ok
}

// HasPart reports whether the schema declares the named part.
func (s *Schema) HasPart(name string) bool {
	_, ok := s.parts[name]
	return ok
}

// Parts returns every part in declaration order, component first.
func (s *Schema) Parts() []PartDef {
	out := make([]PartDef, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.parts[name])
	}
	return out
}

// PartNames returns the part names in declaration order.
func (s *Schema) PartNames() []string {
	return slices.Clone(s.order)
}

// Variants returns the accepted variants.
func (s *Schema) Variants() []string { return slices.Clone(s.variants) }

// Modifiers returns the accepted modifiers.
func (s *Schema) Modifiers() []string { return slices.Clone(s.modifiers) }

// Sizes returns the documented sizes.
func (s *Schema) Sizes() []string { return slices.Clone(s.sizes) }

// Slot returns the declaration of the named slot.
func (s *Schema) Slot(name string) (SlotDef, bool) {
	def, ok := s.slots[name]
	return def, ok
}

// Slots returns every slot in declaration order.
func (s *Schema) Slots() []SlotDef {
	out := make([]SlotDef, 0, len(s.slotOrder))
	for _, name := range s.slotOrder {
		out = append(out, s.slots[name])
	}
	return out
}

func (s *Schema) partError(name string) error {
	return &PartError{Part: name, Valid: s.PartNames()}
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(list, v) {
			list = append(list, v)
		}
	}
	return list
}
