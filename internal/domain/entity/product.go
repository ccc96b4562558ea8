package entity

// Product is one catalog entry. The whole catalog is stored as a single
// list document, so field names must stay stable across writers.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	InStock       bool    `json:"inStock"`
	Category      string  `json:"category"`
	Size          string  `json:"size,omitempty"`
	IsNew         bool    `json:"isNew,omitempty"`
	IsBestseller  bool    `json:"isBestseller,omitempty"`
	IsPrime       bool    `json:"isPrime,omitempty"`
}

// Category is a free-text catalog tag managed from the back-office.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
