package entity

// Supplier resultado de la búsqueda de proveedores por pincode.
type Supplier struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// VendorDashboard datos del panel del vendor.
type VendorDashboard struct {
	VendorName  string `json:"vendorName"`
	Phone       string `json:"phone,omitempty"`
	TotalOrders int    `json:"totalOrders"`
}
