// internal/domain/models/user.go
package models

// User is a registered account.
//
// Username is unique among users and compared case-sensitively.
// Password is a plain comparable string; existing deployments store
// plaintext, so it is never hashed here.
type User struct {
	UserID   string `bson:"userId" json:"userId"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password" json:"-"`
	Email    string `bson:"email" json:"email"`
}
