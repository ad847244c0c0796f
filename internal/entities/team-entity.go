package entities

type Team struct {
	ID   uint64 `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
