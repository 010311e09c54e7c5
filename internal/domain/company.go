package domain

type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Approved bool   `json:"approved"`
	PhotoURL string `json:"photo_url,omitempty"`
}
