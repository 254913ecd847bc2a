package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grandpalace/booking/internal/config"
	"github.com/grandpalace/booking/internal/hotel"
	"github.com/grandpalace/booking/internal/logger"
)

const (
	customerColumns  = 4
	roomColumns      = 4
	suiteColumns     = 6
	suiteKindMarker  = "suite"
	defaultSuiteSize = 4
)

// LoadCustomers reads the customer CSV (id,name,email,phone, header row
// skipped). Any failure or an empty file yields the built-in defaults.
func LoadCustomers(l *logger.Logger, path string) []*hotel.Customer {
	customers, err := readCustomers(path)
	if err != nil {
		l.LogWarnf("Could not load customers from %v, using defaults: %v", path, err.Error())

		return defaultCustomers()
	}

	if len(customers) == 0 {
		l.LogWarnf("No customers in %v, using defaults", path)

		return defaultCustomers()
	}

	l.LogInfo("Loaded %v customer(s) from %v", len(customers), path)

	return customers
}

func readCustomers(path string) ([]*hotel.Customer, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	var customers []*hotel.Customer

	for _, record := range records {
		if len(record) < customerColumns {
			continue
		}

		customers = append(customers, hotel.NewCustomer(
			strings.TrimSpace(record[0]),
			strings.TrimSpace(record[1]),
			strings.TrimSpace(record[2]),
			strings.TrimSpace(record[3]),
		))
	}

	return customers, nil
}

// LoadRooms reads the room CSV (number,type,price,capacity[,jacuzzi,bar]).
// A row whose type equals "suite" case-insensitively and carries the two
// extra columns becomes a suite; every other row becomes a standard room.
// Any failure or an empty file yields the built-in defaults priced from the
// configured rates.
func LoadRooms(l *logger.Logger, conf config.Config) []*hotel.Room {
	rooms, err := readRooms(conf.RoomsFile)
	if err != nil {
		l.LogWarnf("Could not load rooms from %v, using defaults: %v", conf.RoomsFile, err.Error())

		return defaultRooms(conf)
	}

	if len(rooms) == 0 {
		l.LogWarnf("No rooms in %v, using defaults", conf.RoomsFile)

		return defaultRooms(conf)
	}

	l.LogInfo("Loaded %v room(s) from %v", len(rooms), conf.RoomsFile)

	return rooms
}

func readRooms(path string) ([]*hotel.Room, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	var rooms []*hotel.Room

	for _, record := range records {
		if len(record) < roomColumns {
			continue
		}

		number := strings.TrimSpace(record[0])
		kind := strings.TrimSpace(record[1])

		price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse price for room %v", number)
		}

		capacity, err := strconv.Atoi(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, errors.Wrapf(err, "parse capacity for room %v", number)
		}

		if strings.EqualFold(kind, suiteKindMarker) && len(record) >= suiteColumns {
			jacuzzi, _ := strconv.ParseBool(strings.TrimSpace(record[4]))
			bar, _ := strconv.ParseBool(strings.TrimSpace(record[5]))

			rooms = append(rooms, hotel.NewSuiteRoom(number, price, capacity, jacuzzi, bar))

			continue
		}

		rooms = append(rooms, hotel.NewStandardRoom(number, price, capacity))
	}

	return rooms, nil
}

// readRecords returns all data rows of the file, header skipped. Rows may
// have a varying number of columns.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open csv file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv file")
	}

	if len(records) == 0 {
		return nil, nil
	}

	return records[1:], nil
}

func defaultCustomers() []*hotel.Customer {
	return []*hotel.Customer{
		hotel.NewCustomer("C001", "María Victoria", "maria.victoria@email.com", "3001234567"),
		hotel.NewCustomer("C002", "Carlos Arturo Barón", "carlos.baron@email.com", "3002345678"),
		hotel.NewCustomer("C003", "Carlos Augusto Aranzazu", "carlos.aranzazu@email.com", "3003456789"),
	}
}

func defaultRooms(conf config.Config) []*hotel.Room {
	return []*hotel.Room{
		hotel.NewStandardRoom("101", conf.StandardRate, 2),
		hotel.NewStandardRoom("102", conf.StandardRate, 2),
		hotel.NewSuiteRoom("201", conf.SuiteRate, defaultSuiteSize, true, true),
		hotel.NewSuiteRoom("202", conf.SuiteRate, defaultSuiteSize, true, false),
	}
}

// Seed registers the bootstrap datasets into the registries.
func Seed(l *logger.Logger, conf config.Config, customers *hotel.CustomerRegistry, rooms *hotel.RoomRegistry) {
	for _, customer := range LoadCustomers(l, conf.CustomersFile) {
		customers.Add(customer)
	}

	for _, room := range LoadRooms(l, conf) {
		rooms.Add(room)
	}
}
