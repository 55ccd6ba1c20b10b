package wsdl

import (
	"context"

	"github.com/CognitoIQ/soapspec/commonapispec"
	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/typeexpand"
)

// ExtractEndpoints implements §4.7: for each portType/operation, resolve
// its input and output messages, expand each part's shape via expander,
// and correlate the operation's binding to find its SOAP action.
//
// Endpoints are returned in the document order their owning operations
// were declared, matching the emitter's determinism requirement (§3.2.6,
// §4.8). ctx is checked before each operation, per §5's "cooperative
// cancellation token checked ... before each port-type operation
// extraction"; a cancelled run returns the partial slice built so far
// along with ctx.Err(), and the caller must discard it rather than emit
// it, per §5's "partial output is not emitted".
func (def *Definition) ExtractEndpoints(ctx context.Context, expander *typeexpand.Expander, maxDepth, maxCycles int) ([]commonapispec.Endpoint, error) {
	var endpoints []commonapispec.Endpoint
	for _, pt := range def.PortTypes {
		for _, op := range pt.Operations {
			if err := ctx.Err(); err != nil {
				return endpoints, err
			}
			endpoints = append(endpoints, def.extractOne(pt, op, expander, maxDepth, maxCycles))
		}
	}
	return endpoints, nil
}

func (def *Definition) extractOne(pt PortType, op Operation, expander *typeexpand.Expander, maxDepth, maxCycles int) commonapispec.Endpoint {
	ep := commonapispec.Endpoint{
		Path:          "/" + op.Name,
		Method:        "POST",
		OperationName: op.Name,
	}
	if bo, ok := def.BindingOperationFor(op.Name); ok {
		ep.SOAPAction = bo.SOAPAction
	} else {
		ep.SOAPAction = "urn:" + op.Name
		ep.SOAPActionSynthetic = true
	}
	if op.InputMessage != "" {
		ep.Request = def.expandMessage(op.InputMessage, expander, maxDepth, maxCycles)
	}
	if op.OutputMessage != "" {
		ep.Response = def.expandMessage(op.OutputMessage, expander, maxDepth, maxCycles)
	}
	for _, f := range op.Faults {
		ep.Faults = append(ep.Faults, f.Message)
	}
	return ep
}

func (def *Definition) expandMessage(name string, expander *typeexpand.Expander, maxDepth, maxCycles int) commonapispec.MessageShape {
	shape := commonapispec.MessageShape{MessageName: name}
	msg, ok := def.MessageByName(name)
	if !ok {
		return shape
	}
	for _, part := range msg.Parts {
		var qn schema.QualifiedName
		switch {
		case part.Element != nil:
			qn = *part.Element
		case part.Type != nil:
			qn = *part.Type
		default:
			continue
		}
		if schema.IsBuiltin(qn) {
			shape.AllAttributes = append(shape.AllAttributes, typeexpand.AttributeDescriptor{
				Name:      part.Name,
				Type:      qn.String(),
				MinOccurs: 1,
				MaxOccurs: 1,
			})
			continue
		}
		ctx := typeexpand.NewResolutionContext(maxDepth, maxCycles)
		te := expander.ExpandQName(qn, part.Name, "", ctx)
		shape.AllAttributes = append(shape.AllAttributes, flattenLeaves(te)...)
	}
	return shape
}

// flattenLeaves turns one TypeExpansion into the leaf-only
// all_attributes list a MessageShape wants: direct, non-complex
// attributes plus everything already flattened into nested_attributes.
// An attribute whose type was itself expanded (IsNested, set by
// Expand's step 4) contributes only its nested flattening, never the
// opaque top-level entry alongside it. Per the Design Notes' resolved
// Open Question, MessageShape always flattens to leaves, regardless of
// whether the source behavior for a given message happened to do so.
func flattenLeaves(te *typeexpand.TypeExpansion) []typeexpand.AttributeDescriptor {
	if te.CircularReference || te.MaxDepthReached {
		return []typeexpand.AttributeDescriptor{{
			Name: te.Name,
			Type: te.QualifiedNameString,
		}}
	}
	var leaves []typeexpand.AttributeDescriptor
	for _, a := range te.Attributes {
		if a.IsNested {
			continue
		}
		leaves = append(leaves, a)
	}
	leaves = append(leaves, te.NestedAttributes...)
	return leaves
}
