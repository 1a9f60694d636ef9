package constants

// 订单状态常量
const (
	OrderStatusPlaced   = "placed"
	OrderStatusCanceled = "canceled"
)

// 配送状态常量
const (
	DeliveryStatusStandBy   = "stand_by"
	DeliveryStatusShipping  = "shipping"
	DeliveryStatusCompleted = "completed"
)

// 商品状态常量
const (
	ItemStatusActive   = "active"
	ItemStatusDisabled = "disabled"
)

// 会员状态常量
const (
	MemberStatusActive   = "active"
	MemberStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusNotify = "order:status_notify"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "cn"
)
