// Command populate fills the travel catalog with randomly generated options
// for the next 90 days. Existing catalog rows (and their bookings) are
// replaced.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"voyago/config"
	"voyago/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var cities = []string{
	"Delhi", "Mumbai", "Bengaluru", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Kochi", "Goa",
	"Nagpur", "Indore", "Bhopal", "Patna", "Chandigarh", "Amritsar",
	"Varanasi", "Guwahati", "Bhubaneswar", "Visakhapatnam", "Coimbatore",
	"Madurai", "Mysuru", "Dehradun", "Jodhpur", "Raipur", "Ranchi", "Surat",
}

var operators = map[string][]string{
	models.TravelTypeFlight: {
		"IndiGo", "Air India", "SpiceJet", "Vistara", "Air India Express",
		"Akasa Air", "Alliance Air", "Star Air",
	},
	models.TravelTypeTrain: {
		"Indian Railways", "Rajdhani Express", "Shatabdi Express",
		"Duronto Express", "Vande Bharat Express", "Tejas Express",
		"Intercity Express", "Humsafar Express",
	},
	models.TravelTypeBus: {
		"KSRTC", "MSRTC", "APSRTC", "UPSRTC", "VRL Travels", "SRS Travels",
		"Kallada Travels", "Orange Tours", "Neeta Tours", "Parveen Travels",
	},
}

var idPrefix = map[string]string{
	models.TravelTypeFlight: "FL",
	models.TravelTypeTrain:  "TR",
	models.TravelTypeBus:    "BS",
}

const (
	batchSize = 500
	workers   = 4
)

func main() {
	count := flag.Int("count", 10000, "number of travel options to create")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	config.ConnectDatabase()
	db := config.DB

	if err := db.AutoMigrate(&models.TravelOption{}, &models.Booking{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Replace the whole catalog; bookings reference it and go with it.
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Booking{}).Error; err != nil {
		log.Fatalf("failed to clear bookings: %v", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TravelOption{}).Error; err != nil {
		log.Fatalf("failed to clear travel options: %v", err)
	}

	start := time.Now()
	options := make([]models.TravelOption, *count)
	for i := range options {
		options[i] = randomOption(i)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for from := 0; from < len(options); from += batchSize {
		to := from + batchSize
		if to > len(options) {
			to = len(options)
		}
		batch := options[from:to]
		g.Go(func() error {
			return db.CreateInBatches(batch, batchSize).Error
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("bulk insert failed: %v", err)
	}

	log.Printf("created %d travel options in %s", *count, time.Since(start).Round(time.Millisecond))
}

func randomOption(i int) models.TravelOption {
	travelType := models.TravelTypes[rand.Intn(len(models.TravelTypes))]

	source := cities[rand.Intn(len(cities))]
	destination := cities[rand.Intn(len(cities))]
	for destination == source {
		destination = cities[rand.Intn(len(cities))]
	}

	departure := time.Now().AddDate(0, 0, 1+rand.Intn(90)).
		Truncate(time.Hour).
		Add(time.Duration(5+rand.Intn(18)) * time.Hour).
		Add(time.Duration(rand.Intn(4)*15) * time.Minute)

	var (
		travelHours float64
		price       float64
		totalSeats  int
	)
	switch travelType {
	case models.TravelTypeFlight:
		travelHours = 1 + rand.Float64()*4
		price = 2500 + rand.Float64()*12500
		totalSeats = 120 + rand.Intn(131)
	case models.TravelTypeTrain:
		travelHours = 4 + rand.Float64()*20
		price = 300 + rand.Float64()*2700
		totalSeats = 200 + rand.Intn(401)
	default: // BUS
		travelHours = 3 + rand.Float64()*12
		price = 250 + rand.Float64()*1250
		totalSeats = 35 + rand.Intn(21)
	}

	arrival := departure.Add(time.Duration(travelHours * float64(time.Hour)))

	// Leave some options partially booked so search results look lived-in.
	available := totalSeats - rand.Intn(totalSeats*7/10+1)

	return models.TravelOption{
		TravelID:          fmt.Sprintf("%s%05d", idPrefix[travelType], i+1),
		Type:              travelType,
		Source:            source,
		Destination:       destination,
		DepartureDateTime: departure,
		ArrivalDateTime:   arrival,
		Price:             decimal.NewFromFloat(price).Round(2),
		AvailableSeats:    available,
		TotalSeats:        totalSeats,
		Operator:          operators[travelType][rand.Intn(len(operators[travelType]))],
		Duration:          models.ComputeDuration(departure, arrival),
	}
}
