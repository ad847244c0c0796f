package dto

type TeamDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
