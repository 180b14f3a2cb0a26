package entities

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name        string `gorm:"size:255" json:"name"`
	Password    string `gorm:"not null" json:"-"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool   `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool   `gorm:"not null;default:false" json:"is_superuser"`

	Timestamp
}
