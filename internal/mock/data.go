package mock

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"

	"gorm.io/gorm"
)

// decimal 金額フィールド用のポインタを作成
func decimal(v float64) *float64 {
	return &v
}

// サンプルタグ
var Tags = []models.Tag{
	{Name: "Rice", Slug: "rice", Icon: "rice-bowl"},
	{Name: "Chicken", Slug: "chicken", Icon: "chicken"},
	{Name: "Shawarma", Slug: "shawarma", Icon: "shawarma"},
	{Name: "Juice", Slug: "juice", Icon: "juice"},
	{Name: "Goat meat", Slug: "goat-meat", Icon: "goat-meat"},
	{Name: "Fastfood", Slug: "fastfood", Icon: "fastfood"},
	{Name: "Amala", Slug: "amala", Icon: "amala"},
	{Name: "Soup bowl", Slug: "soup-bowl", Icon: "soup"},
	{Name: "Grills", Slug: "grills", Icon: "grill"},
	{Name: "Turkey", Slug: "turkey", Icon: "turkey"},
	{Name: "Grocery", Slug: "grocery", Icon: "grocery"},
	{Name: "Vegetable", Slug: "vegetable", Icon: "vegetable"},
	{Name: "Doughnuts", Slug: "doughnuts", Icon: "donut"},
	{Name: "Smoothies", Slug: "smoothies", Icon: "smoothie"},
}

// サンプルレストラン (TagNamesで関連付けるタグを指定)
var Restaurants = []models.Restaurant{
	{
		Name:         "Hexagon Rice Samonda",
		Slug:         "hexagon-rice-samonda",
		Description:  "Best rice dishes in town with authentic Nigerian flavors",
		Image:        "/api/placeholder/300/200",
		Rating:       4.3,
		ReviewCount:  4862,
		DeliveryTime: "20-30 mins",
		DeliveryFee:  decimal(500),
		MinimumOrder: decimal(2000),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Samonda, Ibadan, Oyo State",
		Phone:        "+2348123456789",
		Email:        "info@hexagonrice.com",
		OpeningTime:  "08:00",
		ClosingTime:  "22:00",
		TagNames:     []string{"Rice", "Chicken", "Turkey"},
	},
	{
		Name:         "LPD ofada rice",
		Slug:         "lpd-ofada-rice",
		Description:  "Authentic Ofada rice with local sauces",
		Image:        "/api/placeholder/300/200",
		Rating:       4.3,
		ReviewCount:  2,
		DeliveryTime: "25-35 mins",
		DeliveryFee:  decimal(600),
		MinimumOrder: decimal(1500),
		IsActive:     true,
		IsOpen:       true,
		Address:      "UI Area, Ibadan, Oyo State",
		Phone:        "+2348987654321",
		Email:        "contact@lpdofada.com",
		OpeningTime:  "09:00",
		ClosingTime:  "21:00",
		TagNames:     []string{"Rice", "Grocery"},
	},
	{
		Name:         "Richbites",
		Slug:         "richbites",
		Description:  "Grills and shawarma specialists",
		Image:        "/api/placeholder/300/200",
		Rating:       4.4,
		ReviewCount:  776,
		DeliveryTime: "15-25 mins",
		DeliveryFee:  decimal(400),
		MinimumOrder: decimal(1800),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Bodija, Ibadan, Oyo State",
		Phone:        "+2347012345678",
		Email:        "hello@richbites.ng",
		OpeningTime:  "10:00",
		ClosingTime:  "23:00",
		TagNames:     []string{"Grills", "Shawarma"},
	},
	{
		Name:         "Richmix",
		Slug:         "richmix",
		Description:  "Mixed rice dishes with various proteins",
		Image:        "/api/placeholder/300/200",
		Rating:       5.0,
		ReviewCount:  0,
		DeliveryTime: "20-30 mins",
		DeliveryFee:  decimal(500),
		MinimumOrder: decimal(2500),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Challenge, Ibadan, Oyo State",
		Phone:        "+2348555666777",
		Email:        "orders@richmix.com",
		OpeningTime:  "08:30",
		ClosingTime:  "21:30",
		TagNames:     []string{"Rice"},
	},
	{
		Name:         "Rich Table",
		Slug:         "rich-table",
		Description:  "Fine dining with premium rice dishes",
		Image:        "/api/placeholder/300/200",
		Rating:       5.0,
		ReviewCount:  0,
		DeliveryTime: "30-40 mins",
		DeliveryFee:  decimal(800),
		MinimumOrder: decimal(3000),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Jericho, Ibadan, Oyo State",
		Phone:        "+2349876543210",
		Email:        "info@richtable.ng",
		OpeningTime:  "11:00",
		ClosingTime:  "22:00",
		TagNames:     []string{"Rice"},
	},
	{
		Name:         "Campus Rice",
		Slug:         "campus-rice",
		Description:  "Student-friendly rice meals at affordable prices",
		Image:        "/api/placeholder/300/200",
		Rating:       4.1,
		ReviewCount:  156,
		DeliveryTime: "15-25 mins",
		DeliveryFee:  decimal(300),
		MinimumOrder: decimal(1200),
		IsActive:     true,
		IsOpen:       true,
		Address:      "UI Campus, Ibadan, Oyo State",
		Phone:        "+2347123456789",
		Email:        "hello@campusrice.com",
		OpeningTime:  "07:00",
		ClosingTime:  "20:00",
		TagNames:     []string{"Rice", "Fastfood"},
	},
	{
		Name:         "Mama Cass Kitchen",
		Slug:         "mama-cass-kitchen",
		Description:  "Traditional Nigerian meals with modern touch",
		Image:        "/api/placeholder/300/200",
		Rating:       4.6,
		ReviewCount:  892,
		DeliveryTime: "25-35 mins",
		DeliveryFee:  decimal(600),
		MinimumOrder: decimal(2200),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Ring Road, Ibadan, Oyo State",
		Phone:        "+2348456789123",
		Email:        "orders@mamacass.ng",
		OpeningTime:  "08:00",
		ClosingTime:  "21:00",
		TagNames:     []string{"Amala", "Soup bowl", "Goat meat"},
	},
	{
		Name:         "Grill Master",
		Slug:         "grill-master",
		Description:  "Expert grilling and barbecue specialists",
		Image:        "/api/placeholder/300/200",
		Rating:       4.5,
		ReviewCount:  634,
		DeliveryTime: "20-30 mins",
		DeliveryFee:  decimal(500),
		MinimumOrder: decimal(2000),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Dugbe, Ibadan, Oyo State",
		Phone:        "+2349012345678",
		Email:        "info@grillmaster.com",
		OpeningTime:  "12:00",
		ClosingTime:  "23:30",
		TagNames:     []string{"Grills", "Chicken", "Turkey"},
	},
	{
		Name:         "Juice Paradise",
		Slug:         "juice-paradise",
		Description:  "Fresh juices and smoothies all day",
		Image:        "/api/placeholder/300/200",
		Rating:       4.2,
		ReviewCount:  425,
		DeliveryTime: "10-20 mins",
		DeliveryFee:  decimal(300),
		MinimumOrder: decimal(800),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Cocoa House, Ibadan, Oyo State",
		Phone:        "+2347789456123",
		Email:        "fresh@juiceparadise.ng",
		OpeningTime:  "06:00",
		ClosingTime:  "20:00",
		TagNames:     []string{"Juice", "Smoothies"},
	},
	{
		Name:         "Sweet Treats",
		Slug:         "sweet-treats",
		Description:  "Delicious doughnuts and pastries",
		Image:        "/api/placeholder/300/200",
		Rating:       4.0,
		ReviewCount:  289,
		DeliveryTime: "15-25 mins",
		DeliveryFee:  decimal(400),
		MinimumOrder: decimal(1000),
		IsActive:     true,
		IsOpen:       true,
		Address:      "Polytechnic Area, Ibadan, Oyo State",
		Phone:        "+2348321654987",
		Email:        "sweet@treats.ng",
		OpeningTime:  "07:30",
		ClosingTime:  "19:00",
		TagNames:     []string{"Doughnuts", "Fastfood"},
	},
}

// Seed サンプルデータを投入 (既存データは削除する)
func Seed(db *gorm.DB) error {
	// 既存データを削除 (関連付け → 親の順)
	if err := db.Exec("DELETE FROM restaurant_tags").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM restaurants").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM tags").Error; err != nil {
		return err
	}

	// タグを投入
	tagIDs := make(map[string]uint, len(Tags))
	for i := range Tags {
		tag := Tags[i]
		tag.ID = 0
		if err := db.Create(&tag).Error; err != nil {
			return err
		}
		tagIDs[tag.Name] = tag.ID
	}

	// レストランと関連付けを投入
	for i := range Restaurants {
		restaurant := Restaurants[i]
		restaurant.ID = 0
		if err := db.Create(&restaurant).Error; err != nil {
			return err
		}

		for _, name := range restaurant.TagNames {
			tagID, ok := tagIDs[name]
			if !ok {
				continue
			}
			relation := models.RestaurantTag{RestaurantID: restaurant.ID, TagID: tagID}
			if err := db.Create(&relation).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
