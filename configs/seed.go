package configs

import (
	"encoding/json"
	"log"
	"os"

	"github.com/Dibyashritarout/ByteBites-main/entity"

	"golang.org/x/crypto/bcrypt"
)

type seedData struct {
	Categories []struct {
		Name      string `json:"name"`
		IconClass string `json:"icon_class"`
	} `json:"categories"`
	Restaurants []struct {
		Name         string  `json:"name"`
		Cuisine      string  `json:"cuisine"`
		Rating       float64 `json:"rating"`
		DeliveryTime string  `json:"delivery_time"`
		ImageURL     string  `json:"image_url"`
	} `json:"restaurants"`
	MenuItems []struct {
		RestaurantName string  `json:"restaurant_name"`
		CategoryName   string  `json:"category_name"`
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		IsVeg          bool    `json:"is_veg"`
		ImageURL       string  `json:"image_url"`
	} `json:"menu_items"`
}

// Seed catalog จาก data.json — รันซ้ำได้ (FirstOrCreate ตามชื่อ)
func SeedCatalog(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Println("⚠️ skip seeding catalog:", err)
		return nil
	}
	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	db := DB()

	categoryMap := map[string]uint{}
	for _, c := range data.Categories {
		cat := entity.Category{Name: c.Name}
		if err := db.Where(&cat).Attrs(entity.Category{IconClass: c.IconClass}).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
		categoryMap[cat.Name] = cat.ID
	}

	restaurantMap := map[string]uint{}
	for _, r := range data.Restaurants {
		rest := entity.Restaurant{Name: r.Name}
		attrs := entity.Restaurant{
			Cuisine: r.Cuisine, Rating: r.Rating,
			DeliveryTime: r.DeliveryTime, ImageURL: r.ImageURL,
		}
		if err := db.Where(&rest).Attrs(attrs).FirstOrCreate(&rest).Error; err != nil {
			return err
		}
		restaurantMap[rest.Name] = rest.ID
	}

	for _, m := range data.MenuItems {
		restID, ok := restaurantMap[m.RestaurantName]
		if !ok {
			log.Printf("⚠️ menu %q references unknown restaurant %q, skipped", m.Name, m.RestaurantName)
			continue
		}
		item := entity.MenuItem{Name: m.Name, RestaurantID: restID}
		attrs := entity.MenuItem{
			Description: m.Description, Price: m.Price,
			IsVeg: m.IsVeg, ImageURL: m.ImageURL,
		}
		if catID, ok := categoryMap[m.CategoryName]; ok {
			attrs.CategoryID = &catID
		}
		if err := db.Where(&item).Attrs(attrs).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}

	log.Println("✅ catalog seeded from", path)
	return nil
}

// สร้าง demo user ครั้งแรก
func SeedDemoUser() error {
	db := DB()
	email := getEnv("DEMO_EMAIL", "")
	pass := getEnv("DEMO_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding demo user: missing DEMO_EMAIL/DEMO_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ demo user already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	user := entity.User{
		Username: getEnv("DEMO_USERNAME", "demo"),
		Email:    email,
		Password: string(hash),
	}
	return db.Create(&user).Error
}
