// File: /soap/wsdl.go
package soap

// wsdl is the structural contract for the document-messaging adapter. The
// endpoint serves it verbatim on GET /soap?wsdl.
const wsdl = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:tns="http://carbonfootprint.service/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    targetNamespace="http://carbonfootprint.service/">

    <types>
        <xsd:schema targetNamespace="http://carbonfootprint.service/">
            <xsd:element name="CalculateCarbonRequest">
                <xsd:complexType>
                    <xsd:sequence>
                        <xsd:element name="userId" type="xsd:int"/>
                        <xsd:element name="transport">
                            <xsd:complexType>
                                <xsd:sequence>
                                    <xsd:element name="carKm" type="xsd:double" minOccurs="0"/>
                                    <xsd:element name="busKm" type="xsd:double" minOccurs="0"/>
                                    <xsd:element name="trainKm" type="xsd:double" minOccurs="0"/>
                                    <xsd:element name="planeKm" type="xsd:double" minOccurs="0"/>
                                </xsd:sequence>
                            </xsd:complexType>
                        </xsd:element>
                        <xsd:element name="energy">
                            <xsd:complexType>
                                <xsd:sequence>
                                    <xsd:element name="electricityHours" type="xsd:double" minOccurs="0"/>
                                    <xsd:element name="gasHours" type="xsd:double" minOccurs="0"/>
                                </xsd:sequence>
                            </xsd:complexType>
                        </xsd:element>
                        <xsd:element name="food">
                            <xsd:complexType>
                                <xsd:sequence>
                                    <xsd:element name="meatMeals" type="xsd:int" minOccurs="0"/>
                                    <xsd:element name="vegetarianMeals" type="xsd:int" minOccurs="0"/>
                                </xsd:sequence>
                            </xsd:complexType>
                        </xsd:element>
                        <xsd:element name="shopping">
                            <xsd:complexType>
                                <xsd:sequence>
                                    <xsd:element name="amount" type="xsd:double" minOccurs="0"/>
                                </xsd:sequence>
                            </xsd:complexType>
                        </xsd:element>
                    </xsd:sequence>
                </xsd:complexType>
            </xsd:element>
            <xsd:element name="CalculateCarbonResponse">
                <xsd:complexType>
                    <xsd:sequence>
                        <xsd:element name="total" type="xsd:double"/>
                        <xsd:element name="transport" type="xsd:double"/>
                        <xsd:element name="energy" type="xsd:double"/>
                        <xsd:element name="food" type="xsd:double"/>
                        <xsd:element name="shopping" type="xsd:double"/>
                        <xsd:element name="recordId" type="xsd:int"/>
                    </xsd:sequence>
                </xsd:complexType>
            </xsd:element>
        </xsd:schema>
    </types>

    <message name="CalculateCarbonRequest">
        <part name="body" element="tns:CalculateCarbonRequest"/>
    </message>
    <message name="CalculateCarbonResponse">
        <part name="body" element="tns:CalculateCarbonResponse"/>
    </message>

    <portType name="CarbonFootprintPortType">
        <operation name="CalculateCarbon">
            <input message="tns:CalculateCarbonRequest"/>
            <output message="tns:CalculateCarbonResponse"/>
        </operation>
    </portType>

    <binding name="CarbonFootprintBinding" type="tns:CarbonFootprintPortType">
        <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
        <operation name="CalculateCarbon">
            <soap:operation soapAction="http://carbonfootprint.service/CalculateCarbon"/>
            <input>
                <soap:body use="literal"/>
            </input>
            <output>
                <soap:body use="literal"/>
            </output>
        </operation>
    </binding>

    <service name="CarbonFootprintService">
        <port name="CarbonFootprintPort" binding="tns:CarbonFootprintBinding">
            <soap:address location="http://localhost:8080/soap"/>
        </port>
    </service>
</definitions>`
