package components

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
)

const componentTypePrefix = "ssmec2"

var pulumiInputType = reflect.TypeOf((*pulumi.Input)(nil)).Elem()

// Importable is the plain Go view of a component, filled from the stack outputs.
type Importable interface {
	SetKey(string)
	Key() string
	Import(in []byte, obj any) error
}

var _ Importable = &JSONImporter{}

// JSONImporter decodes a component from the JSON of its stack output.
type JSONImporter struct {
	key string
}

func (imp *JSONImporter) SetKey(key string) {
	imp.key = key
}

// Key is the stack output name the component was exported under.
func (imp *JSONImporter) Key() string {
	return imp.key
}

func (imp *JSONImporter) Import(in []byte, obj any) error {
	return json.Unmarshal(in, obj)
}

type component interface {
	pulumi.ComponentResource

	init(name string, exportName string)
	outputMap() pulumi.Map
	exportKey() string
	collectOutputs(self pulumi.ComponentResource) error
}

// Component carries the bookkeeping shared by every component. Embed it next
// to pulumi.ResourceState and tag output fields with `pulumi:"<key>"`.
type Component struct {
	name       string
	outputs    pulumi.Map
	exportName string
}

func (c *Component) init(name, exportName string) {
	c.name = name
	c.outputs = pulumi.Map{}
	c.exportName = exportName
}

func (c *Component) outputMap() pulumi.Map { //nolint:unused
	return c.outputs
}

func (c *Component) exportKey() string { //nolint:unused
	return c.exportName
}

// Name is the Pulumi name of the component, handy to name child resources.
func (c *Component) Name() string {
	return c.name
}

func (c *Component) collectOutputs(self pulumi.ComponentResource) error {
	value := reflect.ValueOf(self).Elem()
	for _, field := range reflect.VisibleFields(value.Type()) {
		key := field.Tag.Get("pulumi")
		if key == "" || !field.IsExported() {
			continue
		}
		if !field.Type.Implements(pulumiInputType) {
			return fmt.Errorf("field %s is tagged for export but is not a pulumi.Input", field.Name)
		}
		if _, dup := c.outputs[key]; dup {
			return fmt.Errorf("field %s: output key %s is already used", field.Name, key)
		}
		if v := value.FieldByIndex(field.Index).Interface(); v != nil {
			c.outputs[key] = v.(pulumi.Input)
		}
	}
	return nil
}

// Export publishes the component outputs as a single stack output. It is
// meant to be called through the typed Export method of each component.
func Export(ctx *pulumi.Context, c component, imp Importable) error {
	if imp != nil && !reflect.ValueOf(imp).IsNil() {
		imp.SetKey(c.exportKey())
	}
	ctx.Export(c.exportKey(), c.outputMap().ToMapOutput())
	return nil
}

// NewComponent allocates C, registers it as a `ssmec2:<Type>` component and
// runs builder with it. A nil builder yields an empty component.
func NewComponent[C component](e config.CommonEnvironment, name string, builder func(comp C) error, opts ...pulumi.ResourceOption) (C, error) {
	var comp C

	compType := reflect.TypeOf(comp)
	if compType == nil || compType.Kind() != reflect.Pointer {
		return comp, fmt.Errorf("component type %T must be a pointer", comp)
	}
	typeName := compType.Elem().Name()
	comp = reflect.New(compType.Elem()).Interface().(C)
	comp.init(name, e.CommonNamer.ResourceName(strings.ToLower(typeName), name))

	if err := e.Ctx.RegisterComponentResource(componentTypePrefix+":"+typeName, e.CommonNamer.ResourceName(name), comp, opts...); err != nil {
		return comp, err
	}

	if builder != nil {
		if err := builder(comp); err != nil {
			return comp, err
		}
	}

	if err := comp.collectOutputs(comp); err != nil {
		return comp, err
	}
	return comp, e.Ctx.RegisterResourceOutputs(comp, comp.outputMap())
}
