package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"tbs/src/common"
	"tbs/src/config"
	"tbs/src/draft"
	"tbs/src/models"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

const finalizeLockTTL = 30 * time.Second

func packageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/package", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			store := draft.GetStore()
			merged, err := common.Reconcile(ctx, store, pendingFetcher{}, userId, token)
			if err != nil {
				log.Printf("[package] reconcile failed for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			snapshot := merged.Snapshot()
			ctx.JSON(http.StatusOK, gin.H{
				"data":             merged,
				"price":            common.Quote(snapshot),
				"hotelsBooked":     snapshot.HotelsComplete(),
				"transportBooked":  snapshot.TransportComplete(),
				"readyToFinalize":  snapshot.Complete(),
				"hasMainPassenger": merged.PassengerData != nil,
			})
		}).
		PUT("/package/passenger", func(ctx *gin.Context) {
			var passenger models.Passenger
			if err := ctx.ShouldBindJSON(&passenger); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.ValidatePassenger(passenger); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			store := draft.GetStore()
			if err := store.Save(ctx, userId, models.BookingDraft{PassengerData: &passenger}); err != nil {
				log.Printf("[package] could not persist passenger for user %s: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": passenger})
		}).
		DELETE("/package", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			store := draft.GetStore()
			if err := store.Clear(ctx, userId); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if err := store.ClearSession(ctx, userId); err != nil {
				log.Printf("[package] could not clear payment session for user %s: %s\n", userId, err.Error())
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/package/finalize", func(ctx *gin.Context) {
			var body types.FinalizeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			token := ctx.GetString("token")
			store := draft.GetStore()
			locked, err := store.TryLock(ctx, userId, finalizeLockTTL)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if !locked {
				ctx.JSON(http.StatusConflict, gin.H{"error": "finalize already in progress"})
				return
			}
			defer store.Unlock(ctx, userId)

			finalizer := common.Finalizer{Store: store, Bookings: bookingsAPI, Clock: appClock}
			result, err := finalizer.Finalize(ctx, userId, token, body)
			if err != nil {
				status := http.StatusUnprocessableEntity
				if errors.Is(err, common.ErrPendingBookingExists) {
					status = http.StatusConflict
				}
				if result != nil {
					ctx.JSON(status, gin.H{"error": err.Error(), "data": result})
					return
				}
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}

			if body.PaymentMethod == types.PAYMENT_METHOD_CASH {
				ctx.JSON(http.StatusOK, gin.H{
					"data":       result,
					"redirectTo": fmt.Sprintf("%s/booking-confirmation/%d", config.GetAppHost(), result.BookingID),
				})
				return
			}

			orchestrator := common.PaymentOrchestrator{Store: store, Payments: paymentsAPI, Cards: cards, Clock: appClock}
			session, err := orchestrator.Initialize(ctx, userId, token, result.BookingID, result.Price.Total)
			if err != nil {
				// The booking exists; only the payment step failed. The user
				// retries from the dashboard.
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "data": result})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"data":         result,
				"clientSecret": session.ClientSecret,
				"paymentPhase": session.Phase,
			})
		})
	return g
}
