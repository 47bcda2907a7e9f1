package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/joho/godotenv"

	"stayhub/internal/database"
	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM accommodations")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	accommodations := repository.NewAccommodationRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)

	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CanBook:      true,
		CanHost:      false,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("seed admin:", err)
	}
	log.Println("Admin created: admin / 123456")

	hosts := []domain.User{}
	for i := 1; i <= 2; i++ {
		host := domain.User{
			Username:     fmt.Sprintf("host%d", i),
			PasswordHash: string(hash),
			Phone:        fmt.Sprintf("+7 777 200 00%02d", i),
			Role:         domain.RoleHost,
			Status:       domain.UserActive,
			CanBook:      true,
			CanHost:      true,
		}
		if err := users.Create(ctx, &host); err != nil {
			log.Fatal("seed host:", err)
		}
		hosts = append(hosts, host)
	}

	for i := 1; i <= 3; i++ {
		tourist := domain.User{
			Username:     fmt.Sprintf("tourist%d", i),
			PasswordHash: string(hash),
			Phone:        fmt.Sprintf("+7 777 100 00%02d", i),
			Role:         domain.RoleTourist,
			Status:       domain.UserActive,
			CanBook:      true,
			CanHost:      false,
		}
		if err := users.Create(ctx, &tourist); err != nil {
			log.Fatal("seed tourist:", err)
		}
	}

	// ================== ACCOMMODATIONS ==================
	log.Println("Creating accommodations...")

	samples := []domain.Accommodation{
		{
			OwnerID:       hosts[0].ID,
			Name:          "Seaside Loft",
			Address:       "12 Marine Parade, Aktau",
			Description:   "Bright loft two minutes from the beach",
			PricePerNight: 18000,
			StarRating:    4,
			Status:        domain.ListingApproved,
		},
		{
			OwnerID:       hosts[0].ID,
			Name:          "Old Town Studio",
			Address:       "3 Panfilov St, Almaty",
			Description:   "Compact studio in the walking district",
			PricePerNight: 12000,
			StarRating:    3,
			Status:        domain.ListingApproved,
		},
		{
			OwnerID:       hosts[1].ID,
			Name:          "Mountain View Apartment",
			Address:       "45 Dostyk Ave, Almaty",
			Description:   "Two rooms, balcony facing the Alatau range",
			PricePerNight: 25000,
			StarRating:    5,
			Status:        domain.ListingApproved,
		},
		{
			OwnerID:       hosts[1].ID,
			Name:          "Riverside Cabin",
			Address:       "7 Turgen Gorge Rd",
			Description:   "Quiet cabin by the river, wood stove",
			PricePerNight: 15000,
			StarRating:    0,
			Status:        domain.ListingPendingReview,
		},
	}
	for i := range samples {
		if err := accommodations.Create(ctx, &samples[i]); err != nil {
			log.Fatal("seed accommodation:", err)
		}
	}

	log.Println("Seed completed")
	log.Println("Test accounts (password 123456 for all):")
	log.Println("  admin")
	log.Println("  host1, host2")
	log.Println("  tourist1 ... tourist3")
}
