package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:16;default:'user'"`

	Plans []Plan `gorm:"foreignKey:OwnerID"`
}
