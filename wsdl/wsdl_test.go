package wsdl

import (
	"testing"

	"github.com/CognitoIQ/soapspec/schema"
	"github.com/CognitoIQ/soapspec/xmltree"
	"github.com/stretchr/testify/require"
)

const testNS = "http://example.com/weather"

func mustParse(t *testing.T, data string) *Definition {
	t.Helper()
	root, err := xmltree.Parse([]byte(data))
	require.NoError(t, err)
	doc := &schema.LoadedDocument{Root: root, Path: "test.wsdl", TargetNamespace: root.Attr("", "targetNamespace")}
	return Parse(doc)
}

const fullWSDL = `<?xml version="1.0"?>
<definitions name="Weather"
	xmlns="http://schemas.xmlsoap.org/wsdl/"
	xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
	xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/"
	xmlns:tns="http://example.com/weather"
	targetNamespace="http://example.com/weather">
	<message name="GetWeatherRequest">
		<part name="city" type="xs:string"/>
	</message>
	<message name="GetWeatherResponse">
		<part name="forecast" type="xs:string"/>
	</message>
	<portType name="WeatherPortType">
		<operation name="GetWeather">
			<input message="tns:GetWeatherRequest"/>
			<output message="tns:GetWeatherResponse"/>
			<fault name="BadCity" message="tns:BadCityFault"/>
		</operation>
	</portType>
	<binding name="WeatherBinding" type="tns:WeatherPortType">
		<soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
		<operation name="GetWeather">
			<soap:operation soapAction="http://example.com/weather/GetWeather"/>
			<soap12:operation soapAction="http://example.com/weather/GetWeatherV12"/>
		</operation>
	</binding>
	<service name="WeatherService">
		<port name="WeatherPort" binding="tns:WeatherBinding">
			<soap:address location="http://weather.example.com/soap"/>
		</port>
	</service>
</definitions>`

func TestParseMessagesPortTypesBindingsServices(t *testing.T) {
	def := mustParse(t, fullWSDL)

	require.Len(t, def.Messages, 2)
	require.Len(t, def.PortTypes, 1)
	require.Len(t, def.Bindings, 1)
	require.Len(t, def.Services, 1)

	op := def.PortTypes[0].Operations[0]
	require.Equal(t, "GetWeather", op.Name)
	require.Equal(t, "GetWeatherRequest", op.InputMessage)
	require.Equal(t, "GetWeatherResponse", op.OutputMessage)
	require.Len(t, op.Faults, 1)
	require.Equal(t, "BadCityFault", op.Faults[0].Message)

	svc := def.Services[0]
	require.Equal(t, "WeatherService", svc.Name)
	require.Equal(t, "http://weather.example.com/soap", svc.Ports[0].Location)
}

func TestParseBindingSOAP11WinsOverSOAP12(t *testing.T) {
	def := mustParse(t, fullWSDL)
	bo, ok := def.BindingOperationFor("GetWeather")
	require.True(t, ok)
	require.Equal(t, "http://example.com/weather/GetWeather", bo.SOAPAction)
}

func TestParseBindingFallsBackToSOAP12(t *testing.T) {
	def := mustParse(t, `<?xml version="1.0"?>
<definitions name="Weather"
	xmlns="http://schemas.xmlsoap.org/wsdl/"
	xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/"
	xmlns:tns="http://example.com/weather"
	targetNamespace="http://example.com/weather">
	<binding name="WeatherBinding" type="tns:WeatherPortType">
		<operation name="GetWeather">
			<soap12:operation soapAction="http://example.com/weather/GetWeatherV12"/>
		</operation>
	</binding>
</definitions>`)
	bo, ok := def.BindingOperationFor("GetWeather")
	require.True(t, ok)
	require.Equal(t, "http://example.com/weather/GetWeatherV12", bo.SOAPAction)
}

func TestMessageByName(t *testing.T) {
	def := mustParse(t, fullWSDL)
	msg, ok := def.MessageByName("GetWeatherRequest")
	require.True(t, ok)
	require.Equal(t, "city", msg.Parts[0].Name)

	_, ok = def.MessageByName("NoSuchMessage")
	require.False(t, ok)
}
