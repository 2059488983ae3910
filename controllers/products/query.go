package productController

import "go.mongodb.org/mongo-driver/bson"

// CatalogFilter builds the products filter from the optional query parameters.
// Each present parameter becomes a case-insensitive substring match; absent
// parameters add no constraint.
func CatalogFilter(search, brand, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}
	if category != "" {
		filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}
	if brand != "" {
		filter["brand"] = bson.M{"$regex": brand, "$options": "i"}
	}
	return filter
}

// PriceSortOrder maps the sorting parameter onto a Mongo sort direction for
// priceInt. Only "asc" sorts ascending; every other value sorts descending.
func PriceSortOrder(sorting string) int {
	if sorting == "asc" {
		return 1
	}
	return -1
}
