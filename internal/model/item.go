package model

// Item is one food entry. The JSON shape is also the persisted mirror format.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}
