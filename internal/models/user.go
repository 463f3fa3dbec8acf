package models

// User is the single login identity for this backend. Accounts are
// created out-of-band (startup seeding), never through the API.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}
