package models

import "time"

// User is an account record. The password column holds a bcrypt hash,
// never plaintext, and is excluded from every JSON response.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Pnum      string    `gorm:"size:10;uniqueIndex;not null" json:"pnum"`
	Password  string    `gorm:"not null" json:"-"`
	PicURL    string    `json:"pic_url,omitempty"` // set when the image went to S3
	PicData   []byte    `json:"-"`                 // inline fallback when no bucket is configured
	PicMime   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
