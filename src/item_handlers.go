package main

import (
	"net/http"
	"shareit/src/common"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func itemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/items", func(ctx *gin.Context) {
			ownerId := ctx.GetUint("id")
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithViolations(ctx, err)
				return
			}
			item, err := common.CreateItem(&body, ownerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, item)
		}).
		PATCH("/items/:id", func(ctx *gin.Context) {
			callerId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithViolations(ctx, err)
				return
			}
			item, err := common.PatchItem(params.ID, &body, callerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, item)
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			callerId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.GetItem(params.ID, callerId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, item)
		}).
		GET("/items", func(ctx *gin.Context) {
			ownerId := ctx.GetUint("id")
			from, size, err := parsePaging(ctx)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			items, err := common.ListItemsByOwner(ownerId, from, size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, items)
		}).
		GET("/items/search", func(ctx *gin.Context) {
			from, size, err := parsePaging(ctx)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			items, err := common.SearchItems(ctx.Query("text"), from, size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, items)
		}).
		POST("/items/:id/comment", func(ctx *gin.Context) {
			authorId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCommentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				abortWithViolations(ctx, err)
				return
			}
			comment, err := common.CreateComment(params.ID, &body, authorId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, comment)
		})
	return g
}
