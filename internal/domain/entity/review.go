package entity

// ProductReview references its product by value; there is no referential
// integrity in the store. Verified is always true for reviews created
// through this code path.
type ProductReview struct {
	ID        string `json:"id"`
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Author    string `json:"author,omitempty"`
	Verified  bool   `json:"verified"`
	CreatedAt int64  `json:"createdAt"`
}
