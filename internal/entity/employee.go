package entity

type Employee struct {
	ID        int    `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	City      string `json:"city"`
}
