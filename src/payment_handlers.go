package main

import (
	"errors"
	"net/http"
	"tbs/src/common"
	"tbs/src/draft"
	"tbs/src/types"

	"github.com/gin-gonic/gin"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments/session", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			store := draft.GetStore()
			session, err := store.GetSession(ctx, userId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if session == nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": common.ErrNoPaymentSession.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": session})
		}).
		POST("/payments/confirm", func(ctx *gin.Context) {
			var body types.ConfirmPaymentRequestBody
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
				ctx.JSON(http.StatusConflict, gin.H{"error": "a payment attempt is already in progress"})
				return
			}
			defer store.Unlock(ctx, userId)

			orchestrator := common.PaymentOrchestrator{Store: store, Payments: paymentsAPI, Cards: cards, Clock: appClock}
			outcome, err := orchestrator.Confirm(ctx, userId, token, body.PaymentMethodID)
			if err != nil {
				if errors.Is(err, common.ErrNoPaymentSession) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				if outcome != nil {
					ctx.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "data": outcome})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": outcome})
		}).
		POST("/payments/cancel", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			orchestrator := common.PaymentOrchestrator{Store: draft.GetStore(), Payments: paymentsAPI, Cards: cards, Clock: appClock}
			if err := orchestrator.Cancel(ctx, userId); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
