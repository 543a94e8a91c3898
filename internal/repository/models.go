package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Message struct {
	ID       uint   `gorm:"primaryKey"`
	UserName string `gorm:"type:varchar(255)"` // display name, free text
	Contents string `gorm:"type:text"`
}
