package models

import "time"

type PersonalInfo struct {
	Name       string `json:"name" bson:"name"`
	Dob        string `json:"dob" bson:"dob"`
	Religion   string `json:"religion" bson:"religion"`
	Occupation string `json:"occupation" bson:"occupation"`
	Gender     string `json:"gender" bson:"gender"`
	MobileNo   string `json:"mobileNo" bson:"mobileNo"`
	Email      string `json:"email" bson:"email"`
}

// FamilyReference is the single emergency contact collected per tenant.
type FamilyReference struct {
	Name     string `json:"name" bson:"name"`
	Relation string `json:"relation" bson:"relation"`
	MobileNo string `json:"mobileNo" bson:"mobileNo"`
}

type PresentAddress struct {
	OwnerMobile string `json:"ownerMobile" bson:"ownerMobile"`
	PgId        string `json:"pgId" bson:"pgId"`
	PgName      string `json:"pgName" bson:"pgName"`
}

type PermanentAddress struct {
	State         string `json:"state" bson:"state"`
	District      string `json:"district" bson:"district"`
	PoliceStation string `json:"policeStation" bson:"policeStation"`
	HouseNo       string `json:"houseNo" bson:"houseNo"`
	StreetName    string `json:"streetName" bson:"streetName"`
	Locality      string `json:"locality" bson:"locality"`
	City          string `json:"city" bson:"city"`
	Tehsil        string `json:"tehsil" bson:"tehsil"`
	Pincode       string `json:"pincode" bson:"pincode"`
}

/*
DocumentSet holds the identity documents of a tenant. Photo and the
two ID scans carry inline data-URLs while the form is in progress and
public file URLs once the registration is finalized.
*/
type DocumentSet struct {
	IdType      string `json:"idType" bson:"idType"`
	IdNumber    string `json:"idNumber" bson:"idNumber"`
	Photo       string `json:"photo" bson:"photo"`
	IdScanFront string `json:"idScanFront" bson:"idScanFront"`
	IdScanBack  string `json:"idScanBack" bson:"idScanBack"`
}

/*
Tenant is the registration record written after a successful payment.
It is keyed by (presentAddress.ownerMobile, presentAddress.pgId,
personal.mobileNo); writes are upserts and the record is never
updated or deleted by this service afterwards.
*/
type Tenant struct {
	Personal         PersonalInfo     `json:"personal" bson:"personal"`
	FamilyReference  FamilyReference  `json:"familyReference" bson:"familyReference"`
	PresentAddress   PresentAddress   `json:"presentAddress" bson:"presentAddress"`
	PermanentAddress PermanentAddress `json:"permanentAddress" bson:"permanentAddress"`
	Documents        DocumentSet      `json:"documents" bson:"documents"`
	RegisteredAt     time.Time        `json:"registeredAt" bson:"registeredAt"`
}
