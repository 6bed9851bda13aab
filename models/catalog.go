package models

import "time"

type ServiceCategory string

const (
	CategoryElectrical ServiceCategory = "electrical"
	CategoryPlumbing   ServiceCategory = "plumbing"
	CategoryAppliances ServiceCategory = "appliances"
	CategoryACCooling  ServiceCategory = "ac-cooling"
	CategoryCarpentry  ServiceCategory = "carpentry"
	CategoryPainting   ServiceCategory = "painting"
	CategorySecurity   ServiceCategory = "security"
	CategoryTechIT     ServiceCategory = "tech-it"
	CategoryCleaning   ServiceCategory = "cleaning"
	CategoryEmergency  ServiceCategory = "emergency"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryAppliances, CategoryACCooling,
		CategoryCarpentry, CategoryPainting, CategorySecurity, CategoryTechIT,
		CategoryCleaning, CategoryEmergency:
		return true
	}
	return false
}

// Service is a bookable catalog entry.
type Service struct {
	ID            string          `bson:"id" json:"id"`
	Name          string          `bson:"name" json:"name"`
	Description   string          `bson:"description" json:"description"`
	Category      ServiceCategory `bson:"category" json:"category"`
	Price         float64         `bson:"price" json:"price"`
	EstimatedTime string          `bson:"estimatedTime" json:"estimatedTime"`
	Image         string          `bson:"image" json:"image"`
	IsAvailable   bool            `bson:"isAvailable" json:"isAvailable"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

type PlanDuration string

const (
	DurationMonthly   PlanDuration = "monthly"
	DurationQuarterly PlanDuration = "quarterly"
	DurationYearly    PlanDuration = "yearly"
)

func (d PlanDuration) Valid() bool {
	switch d {
	case DurationMonthly, DurationQuarterly, DurationYearly:
		return true
	}
	return false
}

// EndFrom returns the end of a period of this duration starting at start.
func (d PlanDuration) EndFrom(start time.Time) time.Time {
	switch d {
	case DurationQuarterly:
		return start.AddDate(0, 3, 0)
	case DurationYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// Plan is a subscription offering.
type Plan struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Price       float64      `bson:"price" json:"price"`
	Duration    PlanDuration `bson:"duration" json:"duration"`
	Services    []string     `bson:"services" json:"services"`
	Description string       `bson:"description" json:"description"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}
