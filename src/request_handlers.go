package main

import (
	"net/http"
	"shareit/src/common"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			requesterId := ctx.GetUint("id")
			var body types.CreateRequestRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithViolations(ctx, err)
				return
			}
			request, err := common.CreateRequest(&body, requesterId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, request)
		}).
		GET("/requests", func(ctx *gin.Context) {
			requesterId := ctx.GetUint("id")
			requests, err := common.ListRequestsByUser(requesterId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/all", func(ctx *gin.Context) {
			callerId := ctx.GetUint("id")
			from, size, err := parsePaging(ctx)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			requests, err := common.ListOtherRequests(callerId, from, size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/:id", func(ctx *gin.Context) {
			callerId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := common.GetRequest(params.ID, callerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, request)
		})
	return g
}
