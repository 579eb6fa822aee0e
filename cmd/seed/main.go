package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"leadcrm/internal/database"
	"leadcrm/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	sources = []domain.LeadSource{
		domain.SourceWebsite,
		domain.SourceFacebookAds,
		domain.SourceGoogleAds,
		domain.SourceReferral,
		domain.SourceEvents,
		domain.SourceOther,
	}
	statuses = []domain.LeadStatus{
		domain.StatusNew,
		domain.StatusContacted,
		domain.StatusQualified,
		domain.StatusLost,
		domain.StatusWon,
	}
	firstNames = []string{"Alice", "Bob", "Carol", "David", "Erin", "Frank", "Grace", "Henry"}
	lastNames  = []string{"Anderson", "Brown", "Clark", "Davis", "Evans", "Foster", "Green", "Hill"}
	companies  = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Stark Industries", "Wayne Enterprises"}
	cities     = []string{"Austin", "Boston", "Chicago", "Denver", "Seattle", "Portland"}
)

func main() {
	db, err := database.Connect("leadcrm.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.User{}, &domain.Lead{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	user := domain.User{
		Name:         "Demo User",
		Email:        "demo@leadcrm.local",
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("user create failed:", err)
	}

	log.Println("Creating leads...")
	now := time.Now()
	for i := 0; i < 120; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		created := now.AddDate(0, 0, -rand.Intn(90))

		l := domain.Lead{
			FirstName:   first,
			LastName:    last,
			Email:       fmt.Sprintf("%s.%s.%d@example.com", first, last, i),
			Phone:       fmt.Sprintf("+1-555-01%02d", i%100),
			Company:     companies[rand.Intn(len(companies))],
			City:        cities[rand.Intn(len(cities))],
			State:       "TX",
			Source:      sources[rand.Intn(len(sources))],
			Status:      statuses[rand.Intn(len(statuses))],
			Score:       float64(rand.Intn(101)),
			LeadValue:   float64(rand.Intn(50000)),
			IsQualified: rand.Intn(2) == 1,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if rand.Intn(3) != 0 {
			at := created.AddDate(0, 0, rand.Intn(10))
			l.LastActivityAt = &at
		}

		if err := db.Create(&l).Error; err != nil {
			log.Fatal("lead create failed:", err)
		}
	}

	log.Println("Seed complete: 1 user, 120 leads")
}
