package models

// Product is one catalog row. ProductID comes from the primary database's
// identity column and is never accepted from a client.
type Product struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"product_name"`
	Price     int     `json:"price"`
	ImageURL  *string `json:"product_image_url"`
}

// NewProduct carries validated input for an insert.
type NewProduct struct {
	Name     string
	Price    int
	ImageURL *string
}

// ProductPatch carries the fields present in a PATCH body. A nil pointer
// means the field was not supplied. SetImage distinguishes
// "product_image_url": null (clear the column) from an absent key.
type ProductPatch struct {
	Name     *string
	Price    *int
	ImageURL *string
	SetImage bool
}

// Empty reports whether the patch carries no updatable fields.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && !p.SetImage
}
