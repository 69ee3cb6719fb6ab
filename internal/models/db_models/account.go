package db_models

// Account backs the identity collaborator: it exists to mint the owner id and
// email attached to trip records. Trips reference owners by opaque id only,
// with no foreign key relationship.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
}
