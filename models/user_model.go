package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles. A user created through POST /users may carry no role at all until
// an admin or the storefront assigns one.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const StatusApproved = "approved"

type User struct {
	Id       primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string               `bson:"name,omitempty" json:"name,omitempty"`
	Email    string               `bson:"email" json:"email" validate:"required,email"`
	Photo    string               `bson:"photo,omitempty" json:"photo,omitempty"`
	Role     string               `bson:"role,omitempty" json:"role,omitempty" validate:"omitempty,oneof=buyer seller admin"`
	Status   string               `bson:"status,omitempty" json:"status,omitempty"`
	WishList []primitive.ObjectID `bson:"wishList" json:"wishList"`
	Cart     []primitive.ObjectID `bson:"cart" json:"cart"`
}
