package models

// StatusSummary counts orders by a fixed set of status values. Statuses
// outside the three named ones only show up in TotalOrders.
type StatusSummary struct {
	TotalOrders      int64 `json:"totalOrders"`
	PendingOrders    int64 `json:"pendingOrders"`
	InProgressOrders int64 `json:"inProgressOrders"`
	CompletedOrders  int64 `json:"completedOrders"`
}

// CustomerRollup groups orders by phone number, keeping the first-seen
// contact fields per phone.
type CustomerRollup struct {
	Phone      string `json:"phone"`
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	Email      string `json:"email"`
	OrderCount int64  `json:"orderCount"`
}

// ProductTotal is the summed quantity sold for one product name.
type ProductTotal struct {
	Name      string  `json:"name"`
	TotalSold float64 `json:"totalSold"`
}

// BestSeller is a ProductTotal with its share of all units sold.
type BestSeller struct {
	Name       string  `json:"name"`
	TotalSold  float64 `json:"totalSold"`
	Percentage float64 `json:"percentage"`
}
