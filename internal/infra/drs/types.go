package drs

import (
	"encoding/xml"
	"time"
)

// Request/response shapes for the DRS scheduling backend. The protocol is a
// stateful SOAP service; every call after openSession carries the session id
// issued by the backend, and every response nests its payload under a
// return element.

type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "success"
	StatusFailure ResponseStatus = "failure"
	StatusError   ResponseStatus = "error"
)

// DateTime marshals as the backend's zoneless xsd:dateTime representation.
type DateTime struct {
	Time time.Time
}

const dateTimeLayout = "2006-01-02T15:04:05"

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(d.Time.Format(dateTimeLayout), start)
}

func (d *DateTime) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}
	parsed, err := time.Parse(dateTimeLayout, raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

type OpenSessionRequest struct {
	XMLName  xml.Name `xml:"openSession"`
	Login    string   `xml:"login"`
	Password string   `xml:"password"`
}

type OpenSessionResponse struct {
	XMLName   xml.Name       `xml:"openSessionResponse"`
	Status    ResponseStatus `xml:"return>status"`
	ErrorMsg  string         `xml:"return>errorMsg"`
	SessionID string         `xml:"return>sessionId"`
}

type BookingCode struct {
	SorCode                 string `xml:"bookingCodeSORCode"`
	ItemNumberWithinBooking string `xml:"itemNumberWithinBooking"`
	PrimaryOrderNumber      string `xml:"primaryOrderNumber"`
	Quantity                string `xml:"quantity"`
}

type OrderRequest struct {
	UserID             string        `xml:"userId"`
	Contract           string        `xml:"contract"`
	LocationID         string        `xml:"locationID"`
	PrimaryOrderNumber string        `xml:"primaryOrderNumber"`
	Priority           string        `xml:"priority"`
	OrderComments      string        `xml:"orderComments,omitempty"`
	TargetDate         *DateTime     `xml:"targetDate,omitempty"`
	BookingCodes       []BookingCode `xml:"theBookingCodes"`
}

type CheckAvailabilityRequest struct {
	XMLName     xml.Name     `xml:"checkAvailability"`
	SessionID   string       `xml:"sessionId"`
	PeriodBegin DateTime     `xml:"periodBegin"`
	PeriodEnd   DateTime     `xml:"periodEnd"`
	Order       OrderRequest `xml:"theOrder"`
}

type DaySlot struct {
	Available string   `xml:"available"`
	BeginDate DateTime `xml:"beginDate"`
	EndDate   DateTime `xml:"endDate"`
}

type SlotDay struct {
	Date        DateTime  `xml:"day"`
	SlotsForDay []DaySlot `xml:"slotsForDay"`
}

type CheckAvailabilityResponse struct {
	XMLName  xml.Name       `xml:"checkAvailabilityResponse"`
	Status   ResponseStatus `xml:"return>status"`
	ErrorMsg string         `xml:"return>errorMsg"`
	Days     []SlotDay      `xml:"return>theSlots"`
}

type Booking struct {
	BookingID          int    `xml:"bookingId"`
	Contract           string `xml:"contract"`
	PrimaryOrderNumber string `xml:"primaryOrderNumber"`
}

type Order struct {
	PrimaryOrderNumber string    `xml:"primaryOrderNumber"`
	Bookings           []Booking `xml:"theBookings"`
}

type CreateOrderRequest struct {
	XMLName   xml.Name     `xml:"createOrder"`
	SessionID string       `xml:"sessionId"`
	Order     OrderRequest `xml:"theOrder"`
}

type CreateOrderResponse struct {
	XMLName  xml.Name       `xml:"createOrderResponse"`
	Status   ResponseStatus `xml:"return>status"`
	ErrorMsg string         `xml:"return>errorMsg"`
	Order    *Order         `xml:"return>theOrder"`
}

type SelectOrderRequest struct {
	XMLName             xml.Name `xml:"selectOrder"`
	SessionID           string   `xml:"sessionId"`
	PrimaryOrderNumbers []string `xml:"primaryOrderNumber"`
}

type SelectOrderResponse struct {
	XMLName  xml.Name       `xml:"selectOrderResponse"`
	Status   ResponseStatus `xml:"return>status"`
	ErrorMsg string         `xml:"return>errorMsg"`
	Orders   []Order        `xml:"return>theOrders"`
}

type ScheduleBookingRequest struct {
	XMLName   xml.Name        `xml:"scheduleBooking"`
	SessionID string          `xml:"sessionId"`
	Booking   AssignedBooking `xml:"theBooking"`
}

type AssignedBooking struct {
	BookingID           int      `xml:"bookingId"`
	Contract            string   `xml:"contract"`
	PrimaryOrderNumber  string   `xml:"primaryOrderNumber"`
	PlanningWindowStart DateTime `xml:"planningWindowStart"`
	PlanningWindowEnd   DateTime `xml:"planningWindowEnd"`
	AssignedStart       DateTime `xml:"assignedStart"`
	AssignedEnd         DateTime `xml:"assignedEnd"`
}

type ScheduleBookingResponse struct {
	XMLName  xml.Name       `xml:"scheduleBookingResponse"`
	Status   ResponseStatus `xml:"return>status"`
	ErrorMsg string         `xml:"return>errorMsg"`
}
