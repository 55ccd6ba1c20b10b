package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CognitoIQ/soapspec/enginelog"
)

const testWSDL = `<?xml version="1.0"?>
<definitions name="Weather"
	xmlns="http://schemas.xmlsoap.org/wsdl/"
	xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
	xmlns:xs="http://www.w3.org/2001/XMLSchema"
	xmlns:tns="http://example.com/weather"
	targetNamespace="http://example.com/weather">
	<types>
		<xs:schema targetNamespace="http://example.com/weather">
			<xs:element name="GetWeather">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="city" type="xs:string"/>
					</xs:sequence>
				</xs:complexType>
			</xs:element>
			<xs:element name="GetWeatherResponse">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="forecast" type="xs:string"/>
					</xs:sequence>
				</xs:complexType>
			</xs:element>
		</xs:schema>
	</types>
	<message name="GetWeatherRequest">
		<part name="parameters" element="tns:GetWeather"/>
	</message>
	<message name="GetWeatherResponse">
		<part name="parameters" element="tns:GetWeatherResponse"/>
	</message>
	<portType name="WeatherPortType">
		<operation name="GetWeather">
			<input message="tns:GetWeatherRequest"/>
			<output message="tns:GetWeatherResponse"/>
		</operation>
	</portType>
	<binding name="WeatherBinding" type="tns:WeatherPortType">
		<soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
		<operation name="GetWeather">
			<soap:operation soapAction="http://example.com/weather/GetWeather"/>
		</operation>
	</binding>
	<service name="WeatherService">
		<port name="WeatherPort" binding="tns:WeatherBinding">
			<soap:address location="http://weather.example.com/soap"/>
		</port>
	</service>
</definitions>`

func writeTestWSDL(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "weather.wsdl")
	if err := os.WriteFile(path, []byte(testWSDL), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertEndToEnd(t *testing.T) {
	path := writeTestWSDL(t)
	run := NewConversionRun(WithLogger(enginelog.Discard()))

	spec, err := run.Convert(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if spec.APIName != "WeatherService" {
		t.Errorf("APIName = %q, want WeatherService", spec.APIName)
	}
	if spec.BaseURL != "http://weather.example.com/soap" {
		t.Errorf("BaseURL = %q", spec.BaseURL)
	}
	if len(spec.Endpoints) != 1 {
		t.Fatalf("Endpoints = %v, want 1", spec.Endpoints)
	}
	ep := spec.Endpoints[0]
	if ep.OperationName != "GetWeather" {
		t.Errorf("OperationName = %q", ep.OperationName)
	}
	if ep.SOAPAction != "http://example.com/weather/GetWeather" || ep.SOAPActionSynthetic {
		t.Errorf("SOAPAction = %q, synthetic=%v", ep.SOAPAction, ep.SOAPActionSynthetic)
	}
	if len(ep.Request.AllAttributes) != 1 || ep.Request.AllAttributes[0].Name != "city" {
		t.Errorf("Request.AllAttributes = %v, want [city]", ep.Request.AllAttributes)
	}
	if len(ep.Response.AllAttributes) != 1 || ep.Response.AllAttributes[0].Name != "forecast" {
		t.Errorf("Response.AllAttributes = %v, want [forecast]", ep.Response.AllAttributes)
	}
	if spec.ProcessingMeta.RegistrySize == 0 {
		t.Error("expected a non-zero registry size")
	}
}

func TestConvertStrictImportsFailsOnMissingAuxiliary(t *testing.T) {
	path := writeTestWSDL(t)
	run := NewConversionRun(WithLogger(enginelog.Discard()), StrictImports(true))

	_, err := run.Convert(context.Background(), path, []string{"/nonexistent/extra.xsd"})
	if err == nil {
		t.Fatal("expected Convert to fail when a -xsd file is missing under -strict-imports")
	}
}

func TestConvertCancelledContext(t *testing.T) {
	path := writeTestWSDL(t)
	run := NewConversionRun(WithLogger(enginelog.Discard()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := run.Convert(ctx, path, nil); err == nil {
		t.Error("expected Convert to return an error for a cancelled context")
	}
}
