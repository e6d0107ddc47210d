package models

import "time"

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Cuisine     string `gorm:"type:varchar(100)" json:"cuisine"`
	Address     string `gorm:"type:varchar(255)" json:"address"`
	Description string `gorm:"type:text" json:"description"`

	Tables            []Table            `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	OperatingHours    []OperatingHour    `gorm:"foreignKey:RestaurantID" json:"operating_hours,omitempty"`
	ScheduleOverrides []ScheduleOverride `gorm:"foreignKey:RestaurantID" json:"schedule_overrides,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
