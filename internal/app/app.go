package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/grandpalace/booking/internal/config"
	"github.com/grandpalace/booking/internal/dataset"
	"github.com/grandpalace/booking/internal/hotel"
	"github.com/grandpalace/booking/internal/idgen/uuidgen"
	"github.com/grandpalace/booking/internal/logger"
	"github.com/grandpalace/booking/internal/reservation"
	"github.com/grandpalace/booking/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	propertiesPath := flag.String("properties", "config/properties.json", "path to the properties file")
	flag.Parse()

	conf := config.Load(l, *propertiesPath)

	customers := hotel.NewCustomerRegistry(l)
	rooms := hotel.NewRoomRegistry(l)
	reservations := reservation.NewRegistry(l)

	dataset.Seed(l, conf, customers, rooms)

	l.LogInfo("Bootstrap data loaded: %v customer(s), %v room(s)", customers.Count(), rooms.Count())

	idGen := uuidgen.New("R-")

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	registries := web.Registries{
		Customers:    customers,
		Rooms:        rooms,
		Reservations: reservations,
	}

	srv, err := web.New(ctx, webConf, conf, registries, idGen)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("%v is running on %v:%v...", conf.HotelName, conf.Host, conf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
