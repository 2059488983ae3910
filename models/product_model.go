package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail" validate:"required,email"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Stock       int                `bson:"stockInt" json:"stockInt" validate:"min=0"`
	Price       int                `bson:"priceInt" json:"priceInt" validate:"required,gt=0"`
	Photo       string             `bson:"photo" json:"photo"`
	Description string             `bson:"description" json:"description"`
}
