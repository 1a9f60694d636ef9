package public

import (
	"errors"

	"github.com/commerce-next/internal/http/response"
	"github.com/commerce-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var placeOrderErrorRules = []mappedHandlerError{
	{target: service.ErrMemberNotFound, code: response.CodeNotFound, msg: "member not found"},
	{target: service.ErrMemberDeactivated, code: response.CodeForbidden, msg: "member deactivated"},
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, msg: "invalid cart item"},
	{target: service.ErrCartMismatch, code: response.CodeBadRequest, msg: "cart items do not match request"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "item not found"},
	{target: service.ErrStockInsufficient, code: response.CodeConflict, msg: "insufficient stock"},
	{target: service.ErrOrderCreateFailed, code: response.CodeInternal, msg: "failed to create order"},
}

var cancelOrderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderAlreadyCanceled, code: response.CodeConflict, msg: "order already canceled"},
	{target: service.ErrOrderCancelNotAllowed, code: response.CodeConflict, msg: "order cannot be canceled"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "item not found"},
	{target: service.ErrOrderUpdateFailed, code: response.CodeInternal, msg: "failed to update order"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, msg: "invalid cart item"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "item not found"},
	{target: service.ErrMemberNotFound, code: response.CodeNotFound, msg: "member not found"},
}

var memberAuthErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "invalid email"},
	{target: service.ErrEmailExists, code: response.CodeConflict, msg: "email already registered"},
	{target: service.ErrUserIDExists, code: response.CodeConflict, msg: "user id already registered"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "invalid credentials"},
	{target: service.ErrMemberDeactivated, code: response.CodeForbidden, msg: "member deactivated"},
}
