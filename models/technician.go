package models

import "time"

type Specialization string

const (
	SpecElectrical  Specialization = "electrical"
	SpecPlumbing    Specialization = "plumbing"
	SpecAppliance   Specialization = "appliance"
	SpecVehicle     Specialization = "vehicle"
	SpecAC          Specialization = "ac"
	SpecElectronics Specialization = "electronics"
	SpecSmartDevice Specialization = "smart-device"
)

func (s Specialization) Valid() bool {
	switch s {
	case SpecElectrical, SpecPlumbing, SpecAppliance, SpecVehicle, SpecAC, SpecElectronics, SpecSmartDevice:
		return true
	}
	return false
}

// Technician extends a user with role technician.
type Technician struct {
	ID              string           `bson:"id" json:"id"`
	UserID          string           `bson:"userId" json:"userId"`
	Specializations []Specialization `bson:"specializations" json:"specializations"`
	Experience      int              `bson:"experience" json:"experience"`
	Rating          float64          `bson:"rating" json:"rating"`
	TotalJobs       int              `bson:"totalJobs" json:"totalJobs"`
	CompletedJobs   int              `bson:"completedJobs" json:"completedJobs"`
	Location        string           `bson:"location" json:"location"`
	Availability    bool             `bson:"availability" json:"availability"`
	CurrentJob      string           `bson:"currentJob,omitempty" json:"currentJob,omitempty"`
	Documents       []string         `bson:"documents" json:"documents"`
	IsVerified      bool             `bson:"isVerified" json:"isVerified"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// TechnicianStats is the technician dashboard summary.
type TechnicianStats struct {
	TotalJobs       int     `json:"totalJobs"`
	CompletedJobs   int     `json:"completedJobs"`
	Rating          float64 `json:"rating"`
	MonthlyBookings int64   `json:"monthlyBookings"`
	PendingBookings int64   `json:"pendingBookings"`
	TotalEarnings   float64 `json:"totalEarnings"`
}
