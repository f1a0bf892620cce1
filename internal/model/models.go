package model

import "time"

type ID = uint

type User struct {
	ID ID `json:"id" db:"id"`

	Login        string `json:"login" db:"login"`
	PasswordHash string `json:"-" db:"password_hash"`

	FirstName *string `json:"firstname" db:"firstname"`
	LastName  *string `json:"lastname" db:"lastname"`
	Email     *string `json:"email" db:"email"`
	BirthDate *string `json:"birthdate" db:"birthdate"`
}

// Profile is the slice of User returned by the account endpoint.
type Profile struct {
	FirstName *string `json:"firstname" db:"firstname"`
	LastName  *string `json:"lastname" db:"lastname"`
	Email     *string `json:"email" db:"email"`
	BirthDate *string `json:"birthdate" db:"birthdate"`
}

type Product struct {
	ID ID `json:"id" db:"id"`

	Name     string  `json:"name" db:"name"`
	Price    float64 `json:"price" db:"price"`
	ImageURL string  `json:"imageURL" db:"image_url"`

	Description   string `json:"description" db:"description"`
	Calories      *int   `json:"calories" db:"calories"`
	Carbohydrates *int   `json:"carbohydrates" db:"carbohydrates"`
	Proteins      *int   `json:"proteins" db:"proteins"`
}

// ProductSummary is the catalog listing projection of Product.
type ProductSummary struct {
	ID       ID      `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Price    float64 `json:"price" db:"price"`
	ImageURL string  `json:"imageURL" db:"image_url"`
}

type Order struct {
	ID ID `json:"id" db:"id"`

	User ID `json:"userId" db:"user_id"`

	// PlacedAt is nil while the order is the user's open cart.
	PlacedAt *time.Time `json:"placedAt" db:"placed_at"`
}

type OrderLine struct {
	Order    ID  `json:"-" db:"order_id"`
	Product  ID  `json:"id" db:"product_id"`
	Quantity int `json:"count" db:"quantity"`
}
