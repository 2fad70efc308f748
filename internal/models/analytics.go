package models

type ProductSales struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CategoryPerformance struct {
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
}

// Analytics est entièrement dérivé de la liste des commandes
type Analytics struct {
	TotalRevenue        float64               `json:"totalRevenue"`
	TotalOrders         int                   `json:"totalOrders"`
	TotalCustomers      int                   `json:"totalCustomers"`
	AverageOrderValue   float64               `json:"averageOrderValue"`
	TopSellingProducts  []ProductSales        `json:"topSellingProducts"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`
}
