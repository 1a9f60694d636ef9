package repository

// ItemListFilter 查询商品列表的过滤条件
type ItemListFilter struct {
	Page       int
	PageSize   int
	Search     string
	OnlyActive bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	MemberID uint
	Status   string
}
