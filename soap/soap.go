// File: /soap/soap.go

// Package soap is the document-messaging adapter: one document/literal
// operation (CalculateCarbon) described by a WSDL contract. Malformed
// documents fail at the transport boundary with a client fault.
package soap

import (
	"encoding/xml"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbontrack-api/metrics"
	"carbontrack-api/models"
	"carbontrack-api/services"
)

const serviceNamespace = "http://carbonfootprint.service/"
const envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// Handler serves the SOAP endpoint on top of the shared carbon service.
type Handler struct {
	service *services.CarbonService
}

func NewHandler(service *services.CarbonService) *Handler {
	return &Handler{service: service}
}

type requestEnvelope struct {
	XMLName xml.Name    `xml:"Envelope"`
	Body    requestBody `xml:"Body"`
}

type requestBody struct {
	Calculate *calculateCarbonRequest `xml:"CalculateCarbonRequest"`
}

type calculateCarbonRequest struct {
	UserID    int64 `xml:"userId"`
	Transport struct {
		CarKm   float64 `xml:"carKm"`
		BusKm   float64 `xml:"busKm"`
		TrainKm float64 `xml:"trainKm"`
		PlaneKm float64 `xml:"planeKm"`
	} `xml:"transport"`
	Energy struct {
		ElectricityHours float64 `xml:"electricityHours"`
		GasHours         float64 `xml:"gasHours"`
	} `xml:"energy"`
	Food struct {
		MeatMeals       int `xml:"meatMeals"`
		VegetarianMeals int `xml:"vegetarianMeals"`
	} `xml:"food"`
	Shopping struct {
		Amount float64 `xml:"amount"`
	} `xml:"shopping"`
}

type responseEnvelope struct {
	XMLName   xml.Name     `xml:"soap:Envelope"`
	Namespace string       `xml:"xmlns:soap,attr"`
	Body      responseBody `xml:"soap:Body"`
}

type responseBody struct {
	Response *calculateCarbonResponse `xml:",omitempty"`
	Fault    *soapFault               `xml:",omitempty"`
}

type calculateCarbonResponse struct {
	XMLName   xml.Name `xml:"CalculateCarbonResponse"`
	Namespace string   `xml:"xmlns,attr"`
	Total     float64  `xml:"total"`
	Transport float64  `xml:"transport"`
	Energy    float64  `xml:"energy"`
	Food      float64  `xml:"food"`
	Shopping  float64  `xml:"shopping"`
	RecordID  uint     `xml:"recordId"`
}

type soapFault struct {
	XMLName     xml.Name `xml:"soap:Fault"`
	FaultCode   string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

// ServeWSDL answers GET /soap?wsdl with the contract document.
func (h *Handler) ServeWSDL(c *gin.Context) {
	c.Header("Content-Type", "application/xml")
	c.String(http.StatusOK, wsdl)
}

// HandleRequest processes one SOAP document.
func (h *Handler) HandleRequest(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeFault(c, http.StatusBadRequest, "soap:Client", "unable to read request body")
		return
	}

	var envelope requestEnvelope
	if err := xml.Unmarshal(payload, &envelope); err != nil {
		h.writeFault(c, http.StatusBadRequest, "soap:Client", "malformed SOAP document")
		return
	}
	request := envelope.Body.Calculate
	if request == nil {
		h.writeFault(c, http.StatusBadRequest, "soap:Client", "CalculateCarbonRequest element is required")
		return
	}
	if request.UserID < 1 {
		h.writeFault(c, http.StatusBadRequest, "soap:Client", "userId is required")
		return
	}

	input := models.ActivityInput{
		Transport: models.TransportInput{
			CarKm:   request.Transport.CarKm,
			BusKm:   request.Transport.BusKm,
			TrainKm: request.Transport.TrainKm,
			PlaneKm: request.Transport.PlaneKm,
		},
		Energy: models.EnergyInput{
			ElectricityHours: request.Energy.ElectricityHours,
			GasHours:         request.Energy.GasHours,
		},
		Food: models.FoodInput{
			MeatMeals:       request.Food.MeatMeals,
			VegetarianMeals: request.Food.VegetarianMeals,
		},
		Shopping: models.ShoppingInput{Amount: request.Shopping.Amount},
	}

	result, recordID, err := h.service.ComputeAndRecord(uint(request.UserID), "", input)
	if err != nil {
		log.Printf("soap calculate carbon failed: %v", err)
		h.writeFault(c, http.StatusInternalServerError, "soap:Server", "failed to calculate and save carbon record")
		return
	}
	metrics.CalculationsTotal.WithLabelValues("soap").Inc()

	h.writeEnvelope(c, http.StatusOK, responseBody{
		Response: &calculateCarbonResponse{
			Namespace: serviceNamespace,
			Total:     result.Total,
			Transport: result.Transport,
			Energy:    result.Energy,
			Food:      result.Food,
			Shopping:  result.Shopping,
			RecordID:  recordID,
		},
	})
}

func (h *Handler) writeFault(c *gin.Context, status int, code, message string) {
	h.writeEnvelope(c, status, responseBody{
		Fault: &soapFault{
			FaultCode:   code,
			FaultString: message,
		},
	})
}

func (h *Handler) writeEnvelope(c *gin.Context, status int, body responseBody) {
	envelope := responseEnvelope{
		Namespace: envelopeNamespace,
		Body:      body,
	}
	output, err := xml.Marshal(envelope)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to encode SOAP response")
		return
	}
	c.Header("Content-Type", "text/xml; charset=utf-8")
	c.String(status, xml.Header+string(output))
}
