package models

type PGDetails struct {
	Id         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Address    string `json:"address" bson:"address"`
	HouseNo    string `json:"houseNo" bson:"houseNo"`
	StreetName string `json:"streetName" bson:"streetName"`
	Locality   string `json:"locality" bson:"locality"`
	City       string `json:"city" bson:"city"`
}

/*
Owner is a PG operator, looked up by mobile number. The dataset is
managed elsewhere; this service only reads it. Pgs is the owner's
nested PG map flattened into a slice, the map key carried as Id.
*/
type Owner struct {
	MobileNo string      `json:"mobileNo" bson:"mobileNo"`
	Name     string      `json:"name" bson:"name"`
	Email    string      `json:"email" bson:"email"`
	Pgs      []PGDetails `json:"pgs" bson:"pgs"`
}

// OwnerDocument is the stored shape of an owner record, with PGs as a
// map keyed by PG id.
type OwnerDocument struct {
	MobileNo string               `json:"mobileNo" bson:"mobileNo"`
	Name     string               `json:"name" bson:"name"`
	Email    string               `json:"email" bson:"email"`
	Pgs      map[string]PGDetails `json:"pgs" bson:"pgs"`
}
