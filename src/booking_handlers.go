package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tbs/src/lib"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

const myBookingsCacheTTL = time.Hour

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/bookings/my", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			cacheKey := fmt.Sprintf("user_bookings_%s", userId)
			bookings, err := bookingsAPI.GetMyBookings(ctx, token)
			if err != nil {
				log.Printf("[bookings] upstream fetch failed for user %s: %s\n", userId, err.Error())
				// Stale history beats an empty dashboard.
				if rd := lib.GetRedisClient(); rd != nil {
					if val, cerr := rd.Get(ctx, cacheKey).Result(); cerr == nil {
						var cached []models.Booking
						if json.Unmarshal([]byte(val), &cached) == nil {
							ctx.JSON(http.StatusOK, gin.H{"data": cached, "count": len(cached), "cached": true})
							return
						}
					}
				}
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			if rd := lib.GetRedisClient(); rd != nil {
				if raw, merr := json.Marshal(bookings); merr == nil {
					rd.Set(ctx, cacheKey, raw, myBookingsCacheTTL)
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			token := ctx.GetString("token")
			booking, err := bookingsAPI.GetBooking(ctx, token, params.ID)
			if err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}
