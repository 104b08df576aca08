package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"travelgoals/internal/database"
	"travelgoals/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "travelgoals.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM pending_packages")
	db.Exec("DELETE FROM pending_destinations")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM destinations")
	db.Exec("DELETE FROM vendor_profiles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		Email:        "admin@travelgoals.com",
		PasswordHash: string(adminHash),
		FullName:     "Platform Admin",
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	customers := []domain.User{}
	for i, username := range []string{"ayesha", "bilal", "sara"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.User{
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: string(hash),
			FullName:     fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("+92 300 123 45%02d", i+10),
			Role:         domain.RoleCustomer,
			Active:       true,
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	// ================== VENDORS ==================
	log.Println("Creating vendors...")

	seedVendors := []struct {
		Username string
		Company  string
		Status   domain.VerificationStatus
	}{
		{"pia", "PIA (Pakistan International Airlines)", domain.VerificationVerified},
		{"flyjinnah", "Fly Jinnah", domain.VerificationVerified},
		{"airblue", "Air Blue", domain.VerificationVerified},
		{"newtours", "New Horizons Tours", domain.VerificationPending},
	}

	profiles := []domain.VendorProfile{}
	for _, v := range seedVendors {
		hash, _ := bcrypt.GenerateFromPassword([]byte("vendor123"), bcrypt.DefaultCost)
		user := domain.User{
			Username:     v.Username,
			Email:        v.Username + "@travelgoals.com",
			PasswordHash: string(hash),
			FullName:     v.Company,
			Role:         domain.RoleVendor,
			Active:       true,
		}
		db.Create(&user)

		profile := domain.VendorProfile{
			UserID:         user.ID,
			CompanyName:    v.Company,
			CommissionRate: dec("10.00"),
			Status:         v.Status,
		}
		db.Create(&profile)
		profiles = append(profiles, profile)
	}

	// ================== DESTINATIONS ==================
	log.Println("Creating destinations...")

	seedDestinations := []struct {
		Name, Country, Description string
	}{
		{"Paris", "France", "The city of light: iconic landmarks, world-class museums and riverside charm."},
		{"Tokyo", "Japan", "Neon nights, ancient temples and the best food scene on the planet."},
		{"Dubai", "United Arab Emirates", "Desert luxury, record-breaking architecture and year-round sunshine."},
		{"Bali", "Indonesia", "Volcanic beaches, rice terraces and a famously warm island welcome."},
		{"Barcelona", "Spain", "Gaudi's city by the sea: tapas, beaches and late Mediterranean evenings."},
		{"London", "United Kingdom", "Royal history, global culture and a different neighbourhood every day."},
	}

	destinations := map[string]domain.Destination{}
	for _, sd := range seedDestinations {
		d := domain.Destination{Name: sd.Name, Country: sd.Country, Description: sd.Description}
		db.Create(&d)
		destinations[sd.Name] = d
	}

	// ================== PACKAGES ==================
	log.Println("Creating packages...")

	packages := []domain.Package{
		{
			VendorID:      profiles[0].ID,
			DestinationID: destinations["Paris"].ID,
			Name:          "Paris Romance Tour",
			Description:   "Five days of Seine cruises, patisserie mornings and an evening at the Eiffel Tower.",
			DurationDays:  5,
			MaxTravelers:  10,
			Includes:      "Flights, 4-star hotel, breakfast, Seine cruise, city pass",
			IsActive:      true,
			PriceTable: domain.PriceTable{
				AdultPrice:          dec("1200.00"),
				ChildPrice:          dec("900.00"),
				InfantPrice:         dec("300.00"),
				EconomyAdultPrice:   decPtr("1200.00"),
				EconomyChildPrice:   decPtr("900.00"),
				EconomyInfantPrice:  decPtr("300.00"),
				BusinessAdultPrice:  decPtr("2500.00"),
				BusinessChildPrice:  decPtr("1900.00"),
				BusinessInfantPrice: decPtr("600.00"),
			},
		},
		{
			VendorID:      profiles[1].ID,
			DestinationID: destinations["Tokyo"].ID,
			Name:          "Tokyo Discovery",
			Description:   "A week in Tokyo with a day trip to Mount Fuji and a night in a ryokan.",
			DurationDays:  7,
			MaxTravelers:  8,
			Includes:      "Flights, hotel, JR pass, Fuji day trip",
			IsActive:      true,
			PriceTable: domain.PriceTable{
				AdultPrice:  dec("1800.00"),
				ChildPrice:  dec("1400.00"),
				InfantPrice: dec("400.00"),
			},
		},
		{
			VendorID:      profiles[2].ID,
			DestinationID: destinations["Dubai"].ID,
			Name:          "Dubai Luxury Escape",
			Description:   "Four days of desert safaris, Burj Khalifa views and beach resorts.",
			DurationDays:  4,
			MaxTravelers:  6,
			Includes:      "Flights, 5-star resort, desert safari, city tour",
			IsActive:      true,
			PriceTable: domain.PriceTable{
				AdultPrice:         dec("1500.00"),
				ChildPrice:         dec("1100.00"),
				InfantPrice:        dec("350.00"),
				BusinessAdultPrice: decPtr("2900.00"),
			},
		},
		{
			VendorID:      profiles[0].ID,
			DestinationID: destinations["Bali"].ID,
			Name:          "Bali Beach Week",
			Description:   "Seven days of surf lessons, temple visits and sunset dinners on the sand.",
			DurationDays:  7,
			MaxTravelers:  0, // unlimited
			Includes:      "Flights, villa, breakfast, surf lessons, temple tour",
			IsActive:      true,
			PriceTable: domain.PriceTable{
				AdultPrice:  dec("1199.99"),
				ChildPrice:  dec("899.99"),
				InfantPrice: dec("250.00"),
			},
		},
		{
			VendorID:      profiles[1].ID,
			DestinationID: destinations["Barcelona"].ID,
			Name:          "Barcelona City Break",
			Description:   "A long weekend of Gaudi, tapas crawls and Mediterranean beaches.",
			DurationDays:  3,
			MaxTravelers:  12,
			Includes:      "Flights, boutique hotel, tapas tour, Sagrada Familia tickets",
			IsActive:      true,
			PriceTable: domain.PriceTable{
				AdultPrice:  dec("950.00"),
				ChildPrice:  dec("700.00"),
				InfantPrice: dec("200.00"),
			},
		},
	}
	for i := range packages {
		db.Create(&packages[i])
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	reviews := []domain.Review{
		{PackageID: packages[0].ID, UserID: &customers[0].ID, UserName: customers[0].FullName, Rating: 5, Comment: "The Seine cruise at sunset was unforgettable."},
		{PackageID: packages[0].ID, UserID: &customers[1].ID, UserName: customers[1].FullName, Rating: 4, Comment: "Great hotel location, breakfast could be better."},
		{PackageID: packages[3].ID, UserID: &customers[2].ID, UserName: customers[2].FullName, Rating: 5, Comment: "Surf lessons were the highlight of our year."},
	}
	for i := range reviews {
		db.Create(&reviews[i])
	}

	log.Println("Seed complete.")
	log.Println("Logins: admin/admin123, ayesha/customer123, pia/vendor123 (verified), newtours/vendor123 (pending)")
}
