package main

import (
	"net/http"
	"shareit/src/common"
	"shareit/src/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			requesterId := ctx.GetUint("id")
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithViolations(ctx, err)
				return
			}
			booking, err := common.CreateBooking(&body, requesterId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, booking)
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			ownerId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			approvedParam, ok := ctx.GetQuery("approved")
			if !ok {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing approved parameter."})
				return
			}
			approved, err := strconv.ParseBool(approvedParam)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approved parameter."})
				return
			}
			booking, err := common.SetBookingStatus(params.ID, approved, ownerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			callerId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := common.GetBooking(params.ID, callerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings", func(ctx *gin.Context) {
			bookerId := ctx.GetUint("id")
			from, size, err := parsePaging(ctx)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			state := ctx.DefaultQuery("state", string(types.STATE_ALL))
			bookings, err := common.ListBookingsByBooker(state, bookerId, from, size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		GET("/bookings/owner", func(ctx *gin.Context) {
			ownerId := ctx.GetUint("id")
			from, size, err := parsePaging(ctx)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			state := ctx.DefaultQuery("state", string(types.STATE_ALL))
			bookings, err := common.ListBookingsByOwner(state, ownerId, from, size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		})
	return g
}
