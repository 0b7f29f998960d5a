package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"frontdesk/internal/database"
	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "frontdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	staffRepo := repository.NewStaffRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	discountRepo := repository.NewDiscountRepository(db)

	// ================== STAFF ==================
	log.Println("Creating staff accounts...")
	staff := []struct {
		username, password, name string
		role                     domain.StaffRole
	}{
		{"manager", "manager123", "Maria Holt", domain.RoleManager},
		{"reception", "reception123", "Tom Price", domain.RoleReceptionist},
		{"itadmin", "itadmin123", "Sam Akers", domain.RoleITAdmin},
	}
	for _, s := range staff {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hashing failed:", err)
		}
		user := domain.StaffUser{
			Username:     s.username,
			PasswordHash: string(hash),
			FullName:     s.name,
			Role:         s.role,
			Active:       true,
		}
		if err := staffRepo.Create(ctx, &user); err != nil {
			log.Printf("warning: staff %s not created: %v", s.username, err)
			continue
		}
		log.Printf("Staff created: %s / %s (%s)", s.username, s.password, s.role)
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")
	roomTypes := []domain.RoomType{
		{Code: "STD", Name: "Standard", Price: 100, MaxGuests: 2},
		{Code: "SUP", Name: "Superior", Price: 130, Bath: true, MaxGuests: 3},
		{Code: "DLX", Name: "Deluxe", Price: 180, Deluxe: true, Bath: true, SeparateShower: true, MaxGuests: 4},
	}
	for i := range roomTypes {
		if err := roomTypeRepo.Create(ctx, &roomTypes[i]); err != nil {
			log.Printf("warning: room type %s not created: %v", roomTypes[i].Code, err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	for floor := 1; floor <= 2; floor++ {
		for i := 1; i <= 5; i++ {
			number := floor*100 + i
			code := "STD"
			if i == 4 {
				code = "SUP"
			}
			if i == 5 {
				code = "DLX"
			}
			room := domain.Room{Number: number, RoomTypeCode: code}
			if err := roomRepo.Create(ctx, &room); err != nil {
				log.Printf("warning: room %d not created: %v", number, err)
			}
		}
	}

	// ================== DISCOUNTS ==================
	log.Println("Creating discounts...")
	discounts := []domain.Discount{
		{Code: "SUMMER10", Percentage: 10},
		{Code: "LOYALTY15", Percentage: 15},
	}
	for i := range discounts {
		if err := discountRepo.Create(ctx, &discounts[i]); err != nil {
			log.Printf("warning: discount %s not created: %v", discounts[i].Code, err)
		}
	}

	fmt.Println("Seeding complete.")
}
