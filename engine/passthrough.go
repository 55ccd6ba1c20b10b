package engine

import (
	"github.com/CognitoIQ/soapspec/commonapispec"
	"github.com/CognitoIQ/soapspec/wsdl"
)

func firstServiceName(def *wsdl.Definition) string {
	if len(def.Services) == 0 {
		return ""
	}
	return def.Services[0].Name
}

func firstPortLocation(def *wsdl.Definition) string {
	for _, svc := range def.Services {
		for _, p := range svc.Ports {
			if p.Location != "" {
				return p.Location
			}
		}
	}
	return ""
}

func passthroughServices(def *wsdl.Definition) []commonapispec.ServiceInfo {
	out := make([]commonapispec.ServiceInfo, 0, len(def.Services))
	for _, svc := range def.Services {
		info := commonapispec.ServiceInfo{Name: svc.Name}
		for _, p := range svc.Ports {
			info.Ports = append(info.Ports, commonapispec.PortInfo{
				Name:     p.Name,
				Binding:  p.Binding,
				Location: p.Location,
			})
		}
		out = append(out, info)
	}
	return out
}

func passthroughPortTypes(def *wsdl.Definition) []commonapispec.PortTypeInfo {
	out := make([]commonapispec.PortTypeInfo, 0, len(def.PortTypes))
	for _, pt := range def.PortTypes {
		info := commonapispec.PortTypeInfo{Name: pt.Name.LocalName}
		for _, op := range pt.Operations {
			info.Operations = append(info.Operations, op.Name)
		}
		out = append(out, info)
	}
	return out
}

func passthroughBindings(def *wsdl.Definition) []commonapispec.BindingInfo {
	out := make([]commonapispec.BindingInfo, 0, len(def.Bindings))
	for _, b := range def.Bindings {
		info := commonapispec.BindingInfo{Name: b.Name.LocalName, Type: b.Type.LocalName}
		for _, op := range b.Operations {
			info.Operations = append(info.Operations, commonapispec.BindingOperationInfo{
				Name:       op.Name,
				SOAPAction: op.SOAPAction,
			})
		}
		out = append(out, info)
	}
	return out
}

func passthroughMessages(def *wsdl.Definition) []commonapispec.MessageInfo {
	out := make([]commonapispec.MessageInfo, 0, len(def.Messages))
	for _, m := range def.Messages {
		info := commonapispec.MessageInfo{Name: m.Name.LocalName}
		for _, p := range m.Parts {
			part := commonapispec.PartInfo{Name: p.Name}
			if p.Element != nil {
				part.Element = p.Element.String()
			}
			if p.Type != nil {
				part.Type = p.Type.String()
			}
			info.Parts = append(info.Parts, part)
		}
		out = append(out, info)
	}
	return out
}
