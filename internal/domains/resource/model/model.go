package model

import "campusbook/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID          = "id"
	FieldName        = "name"
	FieldKind        = "kind"
	FieldSubcategory = "subcategory"
	FieldType        = "type"
	FieldLocation    = "location"
	FieldQuantity    = "quantity"
	FieldImage       = "image"
	FieldStatus      = "status"

	KindVehicle   = "VEHICLE"
	KindFacility  = "FACILITY"
	KindEquipment = "EQUIPMENT"

	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusInactive    = "Inactive"
)

type Resource struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	Subcategory string `db:"subcategory"`
	Type        string `db:"type"`
	Location    string `db:"location"`
	Quantity    int    `db:"quantity"`
	Image       string `db:"image"`
	Status      string `db:"status"`
	model.Metadata
}

// Bookable reports whether the resource accepts new bookings. Only resources
// in Available status are bookable.
func (r Resource) Bookable() bool {
	return r.Status == StatusAvailable
}

func ValidKind(kind string) bool {
	switch kind {
	case KindVehicle, KindFacility, KindEquipment:
		return true
	default:
		return false
	}
}
