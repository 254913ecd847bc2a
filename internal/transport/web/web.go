package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/grandpalace/booking/internal/config"
	"github.com/grandpalace/booking/internal/hotel"
	"github.com/grandpalace/booking/internal/logger"
	"github.com/grandpalace/booking/internal/reservation"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type Server struct {
	srv          *http.Server
	router       *mux.Router
	l            *logger.Logger
	conf         Conf
	hotelConf    config.Config
	customers    *hotel.CustomerRegistry
	rooms        *hotel.RoomRegistry
	reservations *reservation.Registry
	idGen        idGenerator
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

type Registries struct {
	Customers    *hotel.CustomerRegistry
	Rooms        *hotel.RoomRegistry
	Reservations *reservation.Registry
}

func New(ctx context.Context, conf Conf, hotelConf config.Config, registries Registries, idGen idGenerator) (*Server, error) {
	router := mux.NewRouter()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           router,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:          srv,
		router:       router,
		l:            conf.L,
		conf:         conf,
		hotelConf:    hotelConf,
		customers:    registries.Customers,
		rooms:        registries.Rooms,
		reservations: registries.Reservations,
		idGen:        idGen,
	}

	server.addRoutes(router)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
