package models

// User is owned by the auth layer. The event API references users by id and
// serializes only the id/name/email projection; the hash never leaves the
// process.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
