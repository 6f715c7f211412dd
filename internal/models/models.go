package models

const (
	PlaceholderCategoryImage = "/images/placeholder-category.svg"
	PlaceholderItemImage     = "/images/placeholder-item.svg"
)

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ItemCount   int64  `json:"item_count"` // derived, populated by the list query only
}

type Item struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CategoryID    int64   `json:"category_id"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
	CategoryName  string  `json:"category_name,omitempty"` // joined, display only
}

// CategoryDetail is the category view payload: the category plus its items.
type CategoryDetail struct {
	Category *Category `json:"category"`
	Items    []*Item   `json:"items"`
}

// ItemFormData backs the edit-item form: the category list for the selection
// control plus the item being edited.
type ItemFormData struct {
	Categories []*Category `json:"categories"`
	Item       *Item       `json:"item"`
}

// CategoryForm carries the raw submitted values of the category form so a
// failed submission can be re-displayed exactly as entered.
type CategoryForm struct {
	Name        string `validate:"required"`
	Description string
	ImageURL    string
}

// ItemForm carries the raw submitted values of the item form. Numeric fields
// stay strings until the service coerces them.
type ItemForm struct {
	Name          string `validate:"required"`
	CategoryID    string `validate:"required"`
	Description   string
	Price         string `validate:"required"`
	StockQuantity string `validate:"required"`
	ImageURL      string
}
