package model

type Category struct {
	CategoryID  int64  `json:"categoryid"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
