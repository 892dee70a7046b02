package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/config"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

// Development seeder: creates an admin, a couple of artists with
// artworks, and a viewer. Safe to re-run; existing usernames are
// skipped.
func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Report{},
		&models.Notification{},
	)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)

	users := []models.User{
		{Username: "admin", Email: "admin@inkspira.local", Password: string(hash), Role: models.RoleAdmin, DisplayName: "Admin"},
		{Username: "mira", Email: "mira@inkspira.local", Password: string(hash), Role: models.RoleArtist, DisplayName: "Mira Chen"},
		{Username: "jules", Email: "jules@inkspira.local", Password: string(hash), Role: models.RoleArtist, DisplayName: "Jules Okafor"},
		{Username: "sam", Email: "sam@inkspira.local", Password: string(hash), Role: models.RoleViewer, DisplayName: "Sam"},
	}

	byUsername := map[string]models.User{}
	for _, u := range users {
		var existing models.User
		if err := database.DB.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			byUsername[u.Username] = existing
			continue
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Username, err)
		}
		byUsername[u.Username] = u
		log.Printf("Created user %s (%s)", u.Username, u.Role)
	}

	artworks := []models.Artwork{
		{ArtistID: byUsername["mira"].ID, Title: "Ink Study No. 4", Description: "Brush and sumi ink on rice paper.", ImageURL: "/uploads/seed-ink-study.jpg", Tags: []string{"ink", "traditional"}},
		{ArtistID: byUsername["mira"].ID, Title: "Harbor at Dusk", Description: "Digital painting, 3 hours.", ImageURL: "/uploads/seed-harbor.jpg", Tags: []string{"digital", "landscape"}},
		{ArtistID: byUsername["jules"].ID, Title: "Circuit Bloom", Description: "Generative piece, custom shader.", ImageURL: "/uploads/seed-circuit.jpg", Tags: []string{"generative", "abstract"}},
	}

	for _, a := range artworks {
		var count int64
		database.DB.Model(&models.Artwork{}).Where("artist_id = ? AND title = ?", a.ArtistID, a.Title).Count(&count)
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&a).Error; err != nil {
			log.Fatalf("Failed to create artwork %q: %v", a.Title, err)
		}
		log.Printf("Created artwork %q", a.Title)
	}

	fmt.Println("Seed complete. All accounts use password Password123")
}
