package main

import (
	"log"
	"net/http"
	"tbs/src/common"
	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func legHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/legs/hotel", func(ctx *gin.Context) {
			var body types.BookHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			slot := common.ClassifyHotelCity(body.City)
			if slot == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "city must be Makkah or Madinah"})
				return
			}
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			record, err := hotelsAPI.BookHotel(ctx, token, body)
			if err != nil {
				log.Printf("[legs] hotel booking failed for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			if record.City == "" {
				record.City = body.City
			}
			partial := models.BookingDraft{BookingID: record.BookingID}
			if slot == "makkah" {
				partial.MakkahHotelData = record.ToLeg()
			} else {
				partial.MadinahHotelData = record.ToLeg()
			}
			store := draft.GetStore()
			if err := store.Save(ctx, userId, partial); err != nil {
				log.Printf("[legs] could not persist hotel leg for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": record})
		}).
		POST("/legs/international", func(ctx *gin.Context) {
			var body types.BookTransportRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			record, err := transportAPI.BookInternationalTransport(ctx, token, body)
			if err != nil {
				log.Printf("[legs] international booking failed for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			store := draft.GetStore()
			partial := models.BookingDraft{TransportData: record.ToLeg(), BookingID: record.BookingID}
			if err := store.Save(ctx, userId, partial); err != nil {
				log.Printf("[legs] could not persist international leg for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": record})
		}).
		POST("/legs/ground", func(ctx *gin.Context) {
			var body types.BookGroundRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			record, err := groundAPI.BookGroundTransport(ctx, token, body)
			if err != nil {
				log.Printf("[legs] ground booking failed for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			store := draft.GetStore()
			partial := models.BookingDraft{GroundData: record.ToLeg(), BookingID: record.BookingID}
			if err := store.Save(ctx, userId, partial); err != nil {
				log.Printf("[legs] could not persist ground leg for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": record})
		})
	return g
}
