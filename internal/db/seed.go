package db

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/timezone"
)

// Seed fills empty catalog tables with demo data: the dentist roster,
// two weeks of bookable slots, and the product catalog. User-generated
// tables are never touched.
func Seed(db *gorm.DB) error {
	if err := seedDentists(db); err != nil {
		return err
	}
	if err := seedTimeSlots(db); err != nil {
		return err
	}
	return seedProducts(db)
}

func seedDentists(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Dentist{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dentists := []models.Dentist{
		{
			Name:        "Dr. Sophea Chan",
			Specialty:   "General Dentistry",
			Education:   "DDS, University of Health Sciences",
			Location:    "SmilePoint Clinic, Phnom Penh",
			Rating:      4.9,
			ReviewCount: 182,
			PriceFrom:   2500,
			Bio:         "Over a decade of experience in preventive and restorative care.",
		},
		{
			Name:        "Dr. Dara Kim",
			Specialty:   "Orthodontics",
			Education:   "DMD, Mahidol University",
			Location:    "SmilePoint Clinic, Phnom Penh",
			Rating:      4.8,
			ReviewCount: 140,
			PriceFrom:   4000,
			Bio:         "Braces and clear-aligner treatment for all ages.",
		},
		{
			Name:         "Dr. Lina Sok",
			Specialty:    "Pediatric Dentistry",
			Education:    "DDS, International University",
			Location:     "SmilePoint Clinic, Phnom Penh",
			Rating:       4.7,
			ReviewCount:  95,
			PriceFrom:    2000,
			OffersVideo:  true,
			OffersClinic: true,
			Bio:          "Gentle care that keeps kids smiling.",
		},
		{
			Name:        "Dr. Vannak Prak",
			Specialty:   "Oral Surgery",
			Education:   "DDS, MSc Oral Surgery",
			Location:    "SmilePoint Clinic, Phnom Penh",
			Rating:      4.6,
			ReviewCount: 77,
			PriceFrom:   6000,
			Bio:         "Wisdom-tooth extraction and implant placement.",
		},
		{
			Name:        "Dr. Maly Heng",
			Specialty:   "Cosmetic Dentistry",
			Education:   "DMD, Chulalongkorn University",
			Location:    "SmilePoint Clinic, Phnom Penh",
			Rating:      4.5,
			ReviewCount: 63,
			PriceFrom:   3500,
			Bio:         "Whitening, veneers and smile design.",
		},
	}

	return db.Create(&dentists).Error
}

var slotHours = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

func seedTimeSlots(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TimeSlot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var dentists []models.Dentist
	if err := db.Find(&dentists).Error; err != nil {
		return err
	}

	today := timezone.Now()

	var slots []models.TimeSlot
	for _, dentist := range dentists {
		for day := 1; day <= 14; day++ {
			date := today.AddDate(0, 0, day)
			if date.Weekday() == time.Sunday {
				continue
			}
			for _, start := range slotHours {
				slots = append(slots, models.TimeSlot{
					DentistID:   dentist.ID,
					Date:        date.Format("2006-01-02"),
					StartTime:   start,
					EndTime:     nextHour(start),
					IsAvailable: true,
				})
			}
		}
	}

	return db.CreateInBatches(&slots, 200).Error
}

func nextHour(hm string) string {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return hm
	}
	return t.Add(time.Hour).Format("15:04")
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	price := func(v float64) *float64 { return &v }

	products := []models.Product{
		{
			Name: "Sonic Pro Electric Toothbrush", Category: "toothbrush", Brand: "OralTech",
			Price: 49.99, OriginalPrice: price(69.99), StockQuantity: 120,
			Images: datatypes.JSON([]byte(`["/img/products/sonic-pro.webp"]`)),
			Tags:   datatypes.JSON([]byte(`["electric","sonic","rechargeable"]`)),
			IsFeatured: true, IsRecommended: true,
			Description: "Sonic cleaning with three intensity modes and a 30-day battery.",
		},
		{
			Name: "Kids Soft-Bristle Toothbrush (2-pack)", Category: "toothbrush", Brand: "OralTech",
			Price: 5.50, StockQuantity: 300,
			Images:      datatypes.JSON([]byte(`["/img/products/kids-brush.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["kids","soft"]`)),
			Description: "Extra-soft bristles sized for small mouths.",
		},
		{
			Name: "Enamel Repair Toothpaste", Category: "toothpaste", Brand: "DentaCare",
			Price: 8.99, StockQuantity: 250, IsRecommended: true,
			Images:      datatypes.JSON([]byte(`["/img/products/enamel-repair.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["fluoride","enamel","sensitive"]`)),
			Description: "Clinically proven fluoride formula for daily enamel repair.",
		},
		{
			Name: "Whitening Toothpaste", Category: "toothpaste", Brand: "DentaCare",
			Price: 7.49, OriginalPrice: price(9.99), StockQuantity: 180, IsFeatured: true,
			Images:      datatypes.JSON([]byte(`["/img/products/whitening-paste.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["whitening","stain-removal"]`)),
			Description: "Removes surface stains without abrasive wear.",
		},
		{
			Name: "Antiseptic Mouthwash 500ml", Category: "mouthwash", Brand: "FreshGuard",
			Price: 6.99, StockQuantity: 200,
			Images:      datatypes.JSON([]byte(`["/img/products/mouthwash.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["antiseptic","alcohol-free"]`)),
			Description: "Alcohol-free rinse that fights plaque and freshens breath.",
		},
		{
			Name: "Waxed Dental Floss (50m)", Category: "dental_floss", Brand: "FreshGuard",
			Price: 3.25, StockQuantity: 400,
			Images:      datatypes.JSON([]byte(`["/img/products/floss.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["floss","waxed","mint"]`)),
			Description: "Shred-resistant waxed floss with a light mint coating.",
		},
		{
			Name: "LED Whitening Kit", Category: "whitening", Brand: "BrightSmile",
			Price: 34.99, OriginalPrice: price(44.99), StockQuantity: 60, IsFeatured: true,
			Images:      datatypes.JSON([]byte(`["/img/products/whitening-kit.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["whitening","led","kit"]`)),
			Description: "Ten-day home whitening program with LED accelerator.",
		},
		{
			Name: "Orthodontic Wax (5-pack)", Category: "accessories", Brand: "BrightSmile",
			Price: 4.75, StockQuantity: 150,
			Images:      datatypes.JSON([]byte(`["/img/products/ortho-wax.webp"]`)),
			Tags:        datatypes.JSON([]byte(`["braces","wax","relief"]`)),
			Description: "Relief wax for braces and aligner edges.",
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}
