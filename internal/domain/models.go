package domain

type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string  `json:"title"`
	Price       float64 `json:"price" gorm:"type:decimal(18,2);not null"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (Product) TableName() string {
	return "products"
}

// CreateProductRequest carries the client-writable product fields. It has no ID on purpose:
// ids are always assigned by the store.
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// User is stored and returned with its password as given at registration
// (or its bcrypt hash, depending on PASSWORD_MODE).
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"index"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (User) TableName() string {
	return "users"
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
