package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"

	"tbs/src/common"
	"tbs/src/gateway"
	"tbs/src/lib"
	"tbs/src/middlewares"
	"tbs/src/models"
	"tbs/src/types"
	"tbs/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

const (
	apiPrefix string = "/api/v1"
)

type hotelBookingAPI interface {
	BookHotel(ctx context.Context, token string, body types.BookHotelRequestBody) (*models.PendingHotelBooking, error)
	GetMyPendingHotelBookings(ctx context.Context, token string) ([]models.PendingHotelBooking, error)
}

type transportBookingAPI interface {
	BookInternationalTransport(ctx context.Context, token string, body types.BookTransportRequestBody) (*models.PendingTransportBooking, error)
	GetMyPendingTransportBookings(ctx context.Context, token string) ([]models.PendingTransportBooking, error)
}

type groundBookingAPI interface {
	BookGroundTransport(ctx context.Context, token string, body types.BookGroundRequestBody) (*models.PendingGroundBooking, error)
	GetMyPendingGroundBookings(ctx context.Context, token string) ([]models.PendingGroundBooking, error)
}

type bookingAPI interface {
	common.BookingCreator
	GetBooking(ctx context.Context, token string, id uint) (*models.Booking, error)
	GetMyBookings(ctx context.Context, token string) ([]models.Booking, error)
}

// The travel API clients and the clock are package vars so tests can swap
// in fakes, mirroring the lib singletons.
var (
	hotelsAPI    hotelBookingAPI       = gateway.NewHotelBookingClient()
	transportAPI transportBookingAPI   = gateway.NewTransportBookingClient()
	groundAPI    groundBookingAPI      = gateway.NewGroundBookingClient()
	bookingsAPI  bookingAPI            = gateway.NewBookingsClient()
	paymentsAPI  common.PaymentGateway = gateway.NewPaymentsClient()
	cards        common.CardConfirmer  = lib.StripeConfirmer{}
	appClock     clockwork.Clock       = clockwork.NewRealClock()
)

// pendingFetcher fans the reconcile fetches out to whatever clients are
// currently wired.
type pendingFetcher struct{}

func (pendingFetcher) GetMyPendingHotelBookings(ctx context.Context, token string) ([]models.PendingHotelBooking, error) {
	return hotelsAPI.GetMyPendingHotelBookings(ctx, token)
}
func (pendingFetcher) GetMyPendingGroundBookings(ctx context.Context, token string) ([]models.PendingGroundBooking, error) {
	return groundAPI.GetMyPendingGroundBookings(ctx, token)
}
func (pendingFetcher) GetMyPendingTransportBookings(ctx context.Context, token string) ([]models.PendingTransportBooking, error) {
	return transportAPI.GetMyPendingTransportBookings(ctx, token)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.GET("/healthcheck", func(ctx *gin.Context) {
		if err := lib.PingRedis(ctx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// cacheCountries serves the passport-country list from redis, seeding it on
// first use. "None" leads the list as the form placeholder; picking it must
// fail validation downstream.
func cacheCountries() []models.Country {
	rd := lib.GetRedisClient()
	if rd != nil {
		val := rd.Get(context.Background(), "countries").Val()
		if val != "" {
			var cached []models.Country
			if err := json.Unmarshal([]byte(val), &cached); err == nil && len(cached) > 0 {
				return cached
			}
		}
	}
	countries := append([]models.Country{{Name: "None", NameAr: "لا شيء", Code: "", DialCode: ""}}, utils.DefaultCountries()...)
	if rd != nil {
		if raw, err := json.Marshal(countries); err == nil {
			rd.Set(context.Background(), "countries", raw, 0)
		}
	}
	return countries
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			if match {
				return true
			}
			match, _ = regexp.MatchString("app:mobile", origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	go cacheCountries()

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware)
	{
		authorized.GET("/countries", func(ctx *gin.Context) {
			countries := cacheCountries()
			ctx.JSON(http.StatusOK, gin.H{"countries": countries})
		})

		legHandlers(authorized)
		packageHandlers(authorized)
		paymentHandlers(authorized)
		bookingHandlers(authorized)
	}

	host := os.Getenv("HOST")
	port := utils.GetenvDefault("PORT", "8080")
	if err := router.Run(host + ":" + port); err != nil {
		log.Fatalf("server exited: %s\n", err.Error())
	}
}
