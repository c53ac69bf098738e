// Package entity defines the domain models for the cafes feature.
package entity

// Cafe represents one listed café. The map URL doubles as the natural
// key: two listings pointing at the same place are rejected.
// Seats and CoffeePrice stay free text, as submitted.
type Cafe struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:250;not null"`
	MapURL       string `gorm:"column:map_url;size:250;not null;uniqueIndex"`
	ImgURL       string `gorm:"column:img_url;size:250;not null"`
	Location     string `gorm:"size:250;not null"`
	HasSockets   bool   `gorm:"not null;default:false"`
	HasToilet    bool   `gorm:"not null;default:false"`
	HasWifi      bool   `gorm:"not null;default:false"`
	CanTakeCalls bool   `gorm:"not null;default:false"`
	Seats        string `gorm:"size:250;not null"`
	CoffeePrice  string `gorm:"size:250;not null"`
}

// TableName returns the table name for GORM.
func (Cafe) TableName() string {
	return "cafe"
}
