// Package schematic provides the sample design domain built on the core
// base object: parts, pins and nets whose attribute writes flow through
// the field-mirror interception, making them subject to rule checks.
package schematic

import "ercheck/core"

// Object kinds used by the schematic domain. Parts, pins and nets derive
// from the base object kind, so checks registered for KindObject apply to
// all of them.
const (
	KindObject = "object"
	KindPart   = "part"
	KindPin    = "pin"
	KindNet    = "net"
)

// DefineKinds declares the domain's kind hierarchy in a registry.
func DefineKinds(registry interface{ DefineKind(kind, parent string) error }) error {
	for _, kind := range []string{KindPart, KindPin, KindNet} {
		if err := registry.DefineKind(kind, KindObject); err != nil {
			return err
		}
	}
	return nil
}

// mustSet assigns a fixed-name attribute. The fixed names used by this
// package never collide with the reserved fields attribute, so the write
// cannot fail.
func mustSet(o *core.Object, key string, value any) {
	if err := o.Set(key, value); err != nil {
		panic(err)
	}
}

func attrString(o *core.Object, key string) string {
	if v, ok := o.Attr(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func attrInt(o *core.Object, key string) int {
	if v, ok := o.Attr(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}

// Part is a schematic component.
type Part struct {
	*core.Object
	pins []*Pin
}

// NewPart creates a part with the given reference designator and name.
func NewPart(ref, name string) *Part {
	p := &Part{Object: core.New(KindPart)}
	mustSet(p.Object, "ref", ref)
	mustSet(p.Object, "name", name)
	mustSet(p.Object, "value", "")
	mustSet(p.Object, "pins", 0)
	return p
}

// Ref returns the reference designator.
func (p *Part) Ref() string {
	return attrString(p.Object, "ref")
}

// Name returns the part name.
func (p *Part) Name() string {
	return attrString(p.Object, "name")
}

// Value returns the part value, e.g. a resistance.
func (p *Part) Value() string {
	return attrString(p.Object, "value")
}

// SetValue assigns the part value.
func (p *Part) SetValue(value string) {
	mustSet(p.Object, "value", value)
}

// AddPin attaches a pin and keeps the mirrored pin count current.
func (p *Part) AddPin(pin *Pin) {
	p.pins = append(p.pins, pin)
	mustSet(p.Object, "pins", len(p.pins))
}

// Pins returns the attached pins.
func (p *Part) Pins() []*Pin {
	return p.pins
}

// Pin is a single part connection point.
type Pin struct {
	*core.Object
}

// NewPin creates a pin with its number and name.
func NewPin(number int, name string) *Pin {
	pin := &Pin{Object: core.New(KindPin)}
	mustSet(pin.Object, "number", number)
	mustSet(pin.Object, "name", name)
	return pin
}

// Number returns the pin number.
func (p *Pin) Number() int {
	return attrInt(p.Object, "number")
}

// Name returns the pin name.
func (p *Pin) Name() string {
	return attrString(p.Object, "name")
}

// Net is an electrical connection between pins.
type Net struct {
	*core.Object
}

// NewNet creates a named net.
func NewNet(name string) *Net {
	n := &Net{Object: core.New(KindNet)}
	mustSet(n.Object, "name", name)
	mustSet(n.Object, "drivers", 0)
	mustSet(n.Object, "loads", 0)
	return n
}

// Name returns the net name.
func (n *Net) Name() string {
	return attrString(n.Object, "name")
}

// Drivers returns the number of outputs driving the net.
func (n *Net) Drivers() int {
	return attrInt(n.Object, "drivers")
}

// SetDrivers records the number of outputs driving the net.
func (n *Net) SetDrivers(count int) {
	mustSet(n.Object, "drivers", count)
}

// Loads returns the number of inputs fed by the net.
func (n *Net) Loads() int {
	return attrInt(n.Object, "loads")
}

// SetLoads records the number of inputs fed by the net.
func (n *Net) SetLoads(count int) {
	mustSet(n.Object, "loads", count)
}
