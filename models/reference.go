package models

// AddressReference is one (state, district) node of the static
// address hierarchy with its police stations.
type AddressReference struct {
	State          string   `json:"state" bson:"state"`
	District       string   `json:"district" bson:"district"`
	PoliceStations []string `json:"policeStations" bson:"policeStations"`
}
