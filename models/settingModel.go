package models

// SiteSetting is one key of the homepage/footer content managed from the
// dashboard (opening hours, location line, phone and so on).
type SiteSetting struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}
