package public

import (
	handlershared "github.com/commerce-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getMemberID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "member_id")
}
