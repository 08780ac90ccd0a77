package middlewares

import (
	"net/http"
	"shareit/src/db"
	"shareit/src/models"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const IdentityHeader = "X-Sharer-User-Id"

// Identity resolves the caller from the numeric X-Sharer-User-Id header.
// There is no token layer: the header is trusted as-is, the middleware
// only checks that it names an existing user.
func Identity(ctx *gin.Context) {
	header := ctx.Request.Header.Get(IdentityHeader)
	if header == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing X-Sharer-User-Id header."})
		return
	}
	id, err := strconv.ParseUint(header, 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Sharer-User-Id header."})
		return
	}
	var user models.User
	d := db.GetDb()
	if err := d.
		Where(&models.User{ID: uint(id)}).
		First(&user).
		Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("name", user.Name)
}
