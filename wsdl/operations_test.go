package wsdl

import (
	"context"
	"testing"

	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/typeexpand"
	"github.com/CognitoIQ/soapspec/xmltree"
	"github.com/stretchr/testify/require"
)

// nestedRecordWSDL implements spec.md §8 Scenario 2: GetUser(id) ->
// User(name, address: Address(street, city)).
const nestedRecordWSDL = `<?xml version="1.0"?>
<definitions name="Users"
	xmlns="http://schemas.xmlsoap.org/wsdl/"
	xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
	xmlns:xs="http://www.w3.org/2001/XMLSchema"
	xmlns:tns="http://example.com/users"
	targetNamespace="http://example.com/users">
	<types>
		<xs:schema targetNamespace="http://example.com/users">
			<xs:element name="GetUser">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="id" type="xs:int"/>
					</xs:sequence>
				</xs:complexType>
			</xs:element>
			<xs:complexType name="Address">
				<xs:sequence>
					<xs:element name="street" type="xs:string"/>
					<xs:element name="city" type="xs:string"/>
				</xs:sequence>
			</xs:complexType>
			<xs:element name="User">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="name" type="xs:string"/>
						<xs:element name="address" type="tns:Address"/>
					</xs:sequence>
				</xs:complexType>
			</xs:element>
		</xs:schema>
	</types>
	<message name="GetUserRequest">
		<part name="parameters" element="tns:GetUser"/>
	</message>
	<message name="GetUserResponse">
		<part name="parameters" element="tns:User"/>
	</message>
	<portType name="UserPortType">
		<operation name="GetUser">
			<input message="tns:GetUserRequest"/>
			<output message="tns:GetUserResponse"/>
		</operation>
	</portType>
	<binding name="UserBinding" type="tns:UserPortType">
		<soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
		<operation name="GetUser">
			<soap:operation soapAction="http://example.com/users/GetUser"/>
		</operation>
	</binding>
	<service name="UserService">
		<port name="UserPort" binding="tns:UserBinding">
			<soap:address location="http://users.example.com/soap"/>
		</port>
	</service>
</definitions>`

func TestExtractEndpointsFlattensNestedRecordWithoutOpaqueParent(t *testing.T) {
	root, err := xmltree.Parse([]byte(nestedRecordWSDL))
	require.NoError(t, err)
	doc := &schema.LoadedDocument{Root: root, Path: "users.wsdl", TargetNamespace: root.Attr("", "targetNamespace")}

	reg := schema.BuildRegistry([]*schema.LoadedDocument{doc})
	resolver := schema.NewResolver(reg, schema.NewResolutionCache(10))
	expander := typeexpand.NewExpander(resolver, &typeexpand.Events{})

	def := Parse(doc)
	endpoints, err := def.ExtractEndpoints(context.Background(), expander, 0, 0)
	require.NoError(t, err)
	require.Len(t, endpoints, 1)

	resp := endpoints[0].Response
	var names []string
	for _, a := range resp.AllAttributes {
		names = append(names, a.Name)
		require.NotEqual(t, "address", a.Name, "opaque address entry must not appear alongside its flattened fields")
	}
	require.Contains(t, names, "name")
	require.Contains(t, names, "street")
	require.Contains(t, names, "city")
}
