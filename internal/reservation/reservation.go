package reservation

import (
	"time"

	"github.com/grandpalace/booking/internal/hotel"
	"github.com/grandpalace/booking/internal/logger"
	"github.com/grandpalace/booking/internal/payment"
)

type Kind string

const (
	KindStandard Kind = "standard"
	KindVIP      Kind = "vip"
)

// Reservation aggregates a customer, a set of rooms, a date range and a
// payment method. The stored total is the undiscounted base price; VIP
// reservations carry a discount rate that TotalPrice applies on every call,
// so room or date edits are reflected in the discounted figure immediately.
type Reservation struct {
	l          *logger.Logger
	id         string
	kind       Kind
	customer   *hotel.Customer
	rooms      []*hotel.Room
	start      time.Time
	end        time.Time
	method     payment.Method
	totalPrice float64
	paid       bool
	discount   float64
	breakfast  bool
	vipLounge  bool
}

func New(l *logger.Logger, id string, customer *hotel.Customer, start, end time.Time, method payment.Method) *Reservation {
	r := &Reservation{
		l:        l,
		id:       id,
		kind:     KindStandard,
		customer: customer,
		start:    start,
		end:      end,
		method:   method,
	}
	r.recalculate()

	return r
}

// NewVIP builds a reservation with a discount rate applied on top of the
// base price. The rate comes from configuration rather than a package
// constant so tests can run with alternate rates.
func NewVIP(
	l *logger.Logger,
	id string,
	customer *hotel.Customer,
	start, end time.Time,
	method payment.Method,
	discount float64,
) *Reservation {
	r := New(l, id, customer, start, end, method)
	r.kind = KindVIP
	r.discount = discount
	r.breakfast = true
	r.vipLounge = true

	return r
}

// AddRoom appends a room and recomputes the total. A nil or currently
// unavailable room is silently ignored; this is only an optimistic check,
// the authoritative one happens when the registry commits the reservation.
func (r *Reservation) AddRoom(room *hotel.Room) {
	if room == nil || !room.Available() {
		return
	}

	r.rooms = append(r.rooms, room)
	r.recalculate()
}

// ChangeDates replaces the date range and recomputes the total. Unset or
// inverted ranges are rejected without mutation.
func (r *Reservation) ChangeDates(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}

	if start.After(end) {
		return false
	}

	r.start = start
	r.end = end
	r.recalculate()

	return true
}

// ProcessPayment charges the stored base total through the configured
// method. It refuses a second attempt after success without invoking the
// method again.
func (r *Reservation) ProcessPayment() bool {
	if r.paid {
		r.l.LogWarnf("Reservation %v has already been paid", r.id)

		return false
	}

	if r.method == nil {
		r.l.LogWarnf("Reservation %v has no payment method configured", r.id)

		return false
	}

	ok := r.method.Pay(r.totalPrice)
	if !ok {
		return false
	}

	r.paid = true
	r.l.LogInfo("Payment for reservation %v processed with %v", r.id, r.method.Name())

	if r.kind == KindVIP {
		r.l.LogInfo(
			"VIP benefits activated for reservation %v: breakfast %v, VIP lounge %v, %.0f%% discount",
			r.id, r.breakfast, r.vipLounge, r.discount*100,
		)
	}

	return true
}

func (r *Reservation) recalculate() {
	if len(r.rooms) == 0 || r.start.IsZero() || r.end.IsZero() {
		r.totalPrice = 0

		return
	}

	nights := r.Nights()

	total := 0.0
	for _, room := range r.rooms {
		total += room.PriceForNights(nights)
	}

	r.totalPrice = total
}

// TotalPrice applies the discount rate to the current base total on every
// call; nothing discounted is ever cached.
func (r *Reservation) TotalPrice() float64 {
	return r.totalPrice * (1 - r.discount)
}

// Nights is the whole-day span between start and end.
func (r *Reservation) Nights() int {
	if r.start.IsZero() || r.end.IsZero() {
		return 0
	}

	return int(r.end.Sub(r.start) / (24 * time.Hour))
}

func (r *Reservation) ID() string {
	return r.id
}

func (r *Reservation) Kind() Kind {
	return r.kind
}

func (r *Reservation) Customer() *hotel.Customer {
	return r.customer
}

// Rooms returns a copy; callers cannot reorder or extend the reservation's
// own list through it.
func (r *Reservation) Rooms() []*hotel.Room {
	rooms := make([]*hotel.Room, len(r.rooms))
	copy(rooms, r.rooms)

	return rooms
}

func (r *Reservation) Start() time.Time {
	return r.start
}

func (r *Reservation) End() time.Time {
	return r.end
}

func (r *Reservation) Method() payment.Method {
	return r.method
}

func (r *Reservation) Paid() bool {
	return r.paid
}

func (r *Reservation) IncludesBreakfast() bool {
	return r.breakfast
}

func (r *Reservation) HasVIPLoungeAccess() bool {
	return r.vipLounge
}
