package service

import "errors"

// 会员相关错误
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberDeactivated  = errors.New("member deactivated")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserIDExists       = errors.New("user id already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// 商品与库存相关错误
var (
	ErrItemNotFound      = errors.New("item not found")
	ErrStockInsufficient = errors.New("insufficient stock")
)

// 购物车相关错误
var (
	ErrCartItemInvalid = errors.New("invalid cart item")
	ErrCartMismatch    = errors.New("cart items do not match request")
)

// 订单相关错误
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyCanceled  = errors.New("order already canceled")
	ErrOrderCancelNotAllowed = errors.New("order cannot be canceled at current delivery stage")
	ErrOrderFetchFailed      = errors.New("failed to fetch order")
	ErrOrderCreateFailed     = errors.New("failed to create order")
	ErrOrderUpdateFailed     = errors.New("failed to update order")
)
