package response

// Generate keeps the historical field name. ImageURL holds base64 WEBP
// bytes, not a URL; clients build a data URI from it.
type Generate struct {
	ImageURL string `json:"imageUrl"`
}
