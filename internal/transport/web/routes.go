package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/grandpalace/booking/internal/hotel"
	"github.com/grandpalace/booking/internal/payment"
	"github.com/grandpalace/booking/internal/reservation"
)

type customerInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type roomInput struct {
	Number        string  `json:"number"`
	Kind          string  `json:"kind"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	HasJacuzzi    bool    `json:"has_jacuzzi"`
	HasBar        bool    `json:"has_bar"`
}

type roomResponse struct {
	Number        string  `json:"number"`
	Kind          string  `json:"kind"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	HasJacuzzi    bool    `json:"has_jacuzzi"`
	HasBar        bool    `json:"has_bar"`
	Available     bool    `json:"available"`
}

type paymentInput struct {
	Type       string `json:"type"`
	CardNumber string `json:"card_number,omitempty"`
	CardHolder string `json:"card_holder,omitempty"`
	Account    string `json:"account,omitempty"`
	Bank       string `json:"bank,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Wallet     string `json:"wallet,omitempty"`
}

type reservationInput struct {
	CustomerID  string       `json:"customer_id"`
	RoomNumbers []string     `json:"room_numbers"`
	From        time.Time    `json:"from"`
	To          time.Time    `json:"to"`
	VIP         bool         `json:"vip"`
	Payment     paymentInput `json:"payment"`
}

type datesInput struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type reservationResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	CustomerID    string    `json:"customer_id"`
	RoomNumbers   []string  `json:"room_numbers"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `json:"total_price"`
	Paid          bool      `json:"paid"`
	PaymentMethod string    `json:"payment_method"`
}

type summaryResponse struct {
	Hotel          string `json:"hotel"`
	Customers      int    `json:"customers"`
	Rooms          int    `json:"rooms"`
	AvailableRooms int    `json:"available_rooms"`
	Reservations   int    `json:"reservations"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func toRoomResponse(room *hotel.Room) roomResponse {
	return roomResponse{
		Number:        room.Number,
		Kind:          string(room.Kind),
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		HasJacuzzi:    room.HasJacuzzi,
		HasBar:        room.HasBar,
		Available:     room.Available(),
	}
}

func toReservationResponse(res *reservation.Reservation) reservationResponse {
	rooms := res.Rooms()

	numbers := make([]string, 0, len(rooms))
	for _, room := range rooms {
		numbers = append(numbers, room.Number)
	}

	var methodName string
	if res.Method() != nil {
		methodName = res.Method().Name()
	}

	return reservationResponse{
		ID:            res.ID(),
		Kind:          string(res.Kind()),
		CustomerID:    res.Customer().ID,
		RoomNumbers:   numbers,
		From:          res.Start(),
		To:            res.End(),
		Nights:        res.Nights(),
		TotalPrice:    res.TotalPrice(),
		Paid:          res.Paid(),
		PaymentMethod: methodName,
	}
}

func (s *Server) buildPaymentMethod(input paymentInput) payment.Method {
	switch input.Type {
	case "card":
		return payment.NewCard(s.l, input.CardNumber, input.CardHolder)
	case "bank_transfer":
		return payment.NewBankTransfer(s.l, input.Account, input.Bank)
	case "crypto":
		return payment.NewCrypto(s.l, input.Currency, input.Wallet)
	default:
		return nil
	}
}

func (s *Server) registerCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var input customerInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if input.ID == "" {
		http.Error(w, "customer id is required", http.StatusBadRequest)

		return
	}

	customer := hotel.NewCustomer(input.ID, input.Name, input.Email, input.Phone)

	if !s.customers.Add(customer) {
		http.Error(w, "customer already exists", http.StatusConflict)

		return
	}

	s.writeJSON(w, http.StatusCreated, customer)
}

func (s *Server) getCustomerHandler(w http.ResponseWriter, r *http.Request) {
	customer := s.customers.FindByID(mux.Vars(r)["id"])
	if customer == nil {
		http.Error(w, "customer not found", http.StatusNotFound)

		return
	}

	s.writeJSON(w, http.StatusOK, customer)
}

func (s *Server) listCustomersHandler(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		customer := s.customers.FindByEmail(email)
		if customer == nil {
			http.Error(w, "customer not found", http.StatusNotFound)

			return
		}

		s.writeJSON(w, http.StatusOK, []*hotel.Customer{customer})

		return
	}

	s.writeJSON(w, http.StatusOK, s.customers.All())
}

func (s *Server) addRoomHandler(w http.ResponseWriter, r *http.Request) {
	var input roomInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if input.Number == "" || input.PricePerNight < 0 || input.Capacity <= 0 {
		http.Error(w, "provide number, non-negative price and positive capacity", http.StatusBadRequest)

		return
	}

	var room *hotel.Room

	if hotel.RoomKind(input.Kind) == hotel.RoomKindSuite {
		room = hotel.NewSuiteRoom(input.Number, input.PricePerNight, input.Capacity, input.HasJacuzzi, input.HasBar)
	} else {
		room = hotel.NewStandardRoom(input.Number, input.PricePerNight, input.Capacity)
	}

	if !s.rooms.Add(room) {
		http.Error(w, "room already exists", http.StatusConflict)

		return
	}

	s.writeJSON(w, http.StatusCreated, toRoomResponse(room))
}

func (s *Server) listRoomsHandler(w http.ResponseWriter, r *http.Request) {
	var rooms []*hotel.Room

	switch {
	case r.URL.Query().Get("available") == "true":
		rooms = s.rooms.Available()
	case r.URL.Query().Get("kind") != "":
		rooms = s.rooms.ByKind(hotel.RoomKind(r.URL.Query().Get("kind")))
	default:
		rooms = s.rooms.All()
	}

	result := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, toRoomResponse(room))
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	var input reservationInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	customer := s.customers.FindByID(input.CustomerID)
	if customer == nil {
		http.Error(w, "customer not found", http.StatusNotFound)

		return
	}

	method := s.buildPaymentMethod(input.Payment)
	if method == nil {
		http.Error(w, "unknown payment method type", http.StatusBadRequest)

		return
	}

	id, err := s.idGen.GetID(r.Context())
	if err != nil {
		s.l.LogErrorf("Could not generate reservation id: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var res *reservation.Reservation

	if input.VIP {
		res = reservation.NewVIP(s.l, id, customer, input.From, input.To, method, s.hotelConf.VIPDiscount)
	} else {
		res = reservation.New(s.l, id, customer, input.From, input.To, method)
	}

	for _, number := range input.RoomNumbers {
		room := s.rooms.FindByNumber(number)
		if room == nil {
			http.Error(w, "room "+number+" not found", http.StatusNotFound)

			return
		}

		// AddRoom drops unavailable rooms silently; committing a reservation
		// missing a requested room would hide the contention from the caller.
		if !room.Available() {
			http.Error(w, "room "+number+" is not available", http.StatusPreconditionFailed)

			return
		}

		res.AddRoom(room)
	}

	if !s.reservations.Create(res) {
		http.Error(w, "one or more rooms are not available", http.StatusPreconditionFailed)

		return
	}

	s.writeJSON(w, http.StatusCreated, toReservationResponse(res))
}

func (s *Server) getReservationHandler(w http.ResponseWriter, r *http.Request) {
	res := s.reservations.FindByID(mux.Vars(r)["id"])
	if res == nil {
		http.Error(w, "reservation not found", http.StatusNotFound)

		return
	}

	s.writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (s *Server) listReservationsHandler(w http.ResponseWriter, r *http.Request) {
	var reservations []*reservation.Reservation

	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		reservations = s.reservations.ByCustomer(customerID)
	} else {
		reservations = s.reservations.All()
	}

	result := make([]reservationResponse, 0, len(reservations))
	for _, res := range reservations {
		result = append(result, toReservationResponse(res))
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) payReservationHandler(w http.ResponseWriter, r *http.Request) {
	res := s.reservations.FindByID(mux.Vars(r)["id"])
	if res == nil {
		http.Error(w, "reservation not found", http.StatusNotFound)

		return
	}

	if !res.ProcessPayment() {
		http.Error(w, "payment rejected", http.StatusConflict)

		return
	}

	s.writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (s *Server) changeDatesHandler(w http.ResponseWriter, r *http.Request) {
	res := s.reservations.FindByID(mux.Vars(r)["id"])
	if res == nil {
		http.Error(w, "reservation not found", http.StatusNotFound)

		return
	}

	var input datesInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if !res.ChangeDates(input.From, input.To) {
		http.Error(w, "invalid date range", http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (s *Server) cancelReservationHandler(w http.ResponseWriter, r *http.Request) {
	if !s.reservations.Cancel(mux.Vars(r)["id"]) {
		http.Error(w, "reservation not found", http.StatusNotFound)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) summaryHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, summaryResponse{
		Hotel:          s.hotelConf.HotelName,
		Customers:      s.customers.Count(),
		Rooms:          s.rooms.Count(),
		AvailableRooms: len(s.rooms.Available()),
		Reservations:   s.reservations.Count(),
	})
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *mux.Router) {
	handle := func(path string, handler http.HandlerFunc, methods ...string) {
		r.Handle(
			path,
			s.applyMiddlewares(handler, s.loggerMiddleware(), s.recoverMiddleware()),
		).Methods(methods...)
	}

	handle("/api/customers/v1", s.registerCustomerHandler, http.MethodPost)
	handle("/api/customers/v1", s.listCustomersHandler, http.MethodGet)
	handle("/api/customers/v1/{id}", s.getCustomerHandler, http.MethodGet)

	handle("/api/rooms/v1", s.addRoomHandler, http.MethodPost)
	handle("/api/rooms/v1", s.listRoomsHandler, http.MethodGet)

	handle("/api/reservations/v1", s.createReservationHandler, http.MethodPost)
	handle("/api/reservations/v1", s.listReservationsHandler, http.MethodGet)
	handle("/api/reservations/v1/{id}", s.getReservationHandler, http.MethodGet)
	handle("/api/reservations/v1/{id}", s.cancelReservationHandler, http.MethodDelete)
	handle("/api/reservations/v1/{id}/payment", s.payReservationHandler, http.MethodPost)
	handle("/api/reservations/v1/{id}/dates", s.changeDatesHandler, http.MethodPatch)

	handle("/api/summary/v1", s.summaryHandler, http.MethodGet)
	handle(s.conf.LivenessEndpoint, s.livenessHandler, http.MethodGet)
}
