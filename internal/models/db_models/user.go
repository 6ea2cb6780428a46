package db_models

// User is a wallet holder. PasswordHash holds only the bcrypt hash;
// plaintext exists transiently in the signup/login request. Email uniqueness
// is checked by the signup flow rather than enforced as a constraint.
type User struct {
	BaseModel
	Name             string `json:"name"`
	Email            string `gorm:"index" json:"email"`
	PasswordHash     string `json:"-"`
	Address          string `json:"address,omitempty"`
	BitcoinAddress   string `json:"bitcoin_address,omitempty"`
	PlaidAccessToken string `json:"-"`

	Accounts  []Account  `gorm:"foreignKey:UserID" json:"-"`
	Purchases []Purchase `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "Users" }
