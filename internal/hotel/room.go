package hotel

type RoomKind string

const (
	RoomKindStandard RoomKind = "standard"
	RoomKindSuite    RoomKind = "suite"
)

// Room is one inventory unit. The availability flag starts true and is
// flipped only by the reservation lifecycle: false on commit, true on
// cancellation.
type Room struct {
	Number        string   `json:"number"`
	Kind          RoomKind `json:"kind"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	HasJacuzzi    bool     `json:"has_jacuzzi"`
	HasBar        bool     `json:"has_bar"`
	available     bool
}

func NewStandardRoom(number string, pricePerNight float64, capacity int) *Room {
	return &Room{
		Number:        number,
		Kind:          RoomKindStandard,
		PricePerNight: pricePerNight,
		Capacity:      capacity,
		available:     true,
	}
}

func NewSuiteRoom(number string, pricePerNight float64, capacity int, hasJacuzzi, hasBar bool) *Room {
	return &Room{
		Number:        number,
		Kind:          RoomKindSuite,
		PricePerNight: pricePerNight,
		Capacity:      capacity,
		HasJacuzzi:    hasJacuzzi,
		HasBar:        hasBar,
		available:     true,
	}
}

// PriceForNights is defined for nights >= 0; zero nights cost nothing.
func (r *Room) PriceForNights(nights int) float64 {
	return r.PricePerNight * float64(nights)
}

func (r *Room) Available() bool {
	return r.available
}

func (r *Room) SetAvailable(available bool) {
	r.available = available
}
