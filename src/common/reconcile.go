package common

import (
	"context"
	"log"
	"strings"

	"tbs/src/draft"
	"tbs/src/models"

	"golang.org/x/sync/errgroup"
)

// PendingLegs holds the three pending-leg collections fetched for the
// current user. Each collection is merged into its own draft slot, so the
// order the responses arrive in never changes the outcome.
type PendingLegs struct {
	Hotels         []models.PendingHotelBooking
	Grounds        []models.PendingGroundBooking
	Internationals []models.PendingTransportBooking
}

type PendingLegFetcher interface {
	GetMyPendingHotelBookings(ctx context.Context, token string) ([]models.PendingHotelBooking, error)
	GetMyPendingGroundBookings(ctx context.Context, token string) ([]models.PendingGroundBooking, error)
	GetMyPendingTransportBookings(ctx context.Context, token string) ([]models.PendingTransportBooking, error)
}

// FetchPendingLegs requests the three collections concurrently. A failed
// fetch is logged and treated as empty: the local draft stays authoritative
// and the flow continues.
func FetchPendingLegs(ctx context.Context, fetcher PendingLegFetcher, token string) PendingLegs {
	var pending PendingLegs
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := fetcher.GetMyPendingHotelBookings(gctx, token)
		if err != nil {
			log.Printf("[reconcile] pending hotel fetch failed: %s\n", err.Error())
			return nil
		}
		pending.Hotels = records
		return nil
	})
	g.Go(func() error {
		records, err := fetcher.GetMyPendingGroundBookings(gctx, token)
		if err != nil {
			log.Printf("[reconcile] pending ground fetch failed: %s\n", err.Error())
			return nil
		}
		pending.Grounds = records
		return nil
	})
	g.Go(func() error {
		records, err := fetcher.GetMyPendingTransportBookings(gctx, token)
		if err != nil {
			log.Printf("[reconcile] pending transport fetch failed: %s\n", err.Error())
			return nil
		}
		pending.Internationals = records
		return nil
	})
	g.Wait()
	return pending
}

// ClassifyHotelCity maps a pending hotel's city onto a draft slot. The API
// has returned both English and Arabic city names.
func ClassifyHotelCity(city string) string {
	switch strings.ToLower(strings.TrimSpace(city)) {
	case "makkah", "مكة":
		return "makkah"
	case "madinah", "المدينة":
		return "madinah"
	}
	return ""
}

// MergePending reconciles the local draft with the server's pending legs.
// It seeds from the local draft (never from empty, so a draft that is ahead
// of the server survives an empty response), applies hotels by city with
// last-write-wins per slot, takes the most recently created ground and
// international leg, and adopts the first non-zero server booking id as the
// shared parent id. The second return reports whether any server data was
// seen: callers must not persist (or clear) anything when it is false.
func MergePending(local models.BookingDraft, pending PendingLegs) (models.BookingDraft, bool) {
	merged := local
	hasServerData := false
	var serverBookingId uint

	for _, hotel := range pending.Hotels {
		if serverBookingId == 0 && hotel.BookingID != 0 {
			serverBookingId = hotel.BookingID
		}
		switch ClassifyHotelCity(hotel.City) {
		case "makkah":
			merged.MakkahHotelData = hotel.ToLeg()
			hasServerData = true
		case "madinah":
			merged.MadinahHotelData = hotel.ToLeg()
			hasServerData = true
		}
	}

	if n := len(pending.Grounds); n > 0 {
		ground := pending.Grounds[n-1]
		if serverBookingId == 0 && ground.BookingID != 0 {
			serverBookingId = ground.BookingID
		}
		merged.GroundData = ground.ToLeg()
		hasServerData = true
	}

	if n := len(pending.Internationals); n > 0 {
		international := pending.Internationals[n-1]
		if serverBookingId == 0 && international.BookingID != 0 {
			serverBookingId = international.BookingID
		}
		merged.TransportData = international.ToLeg()
		hasServerData = true
	}

	if hasServerData && serverBookingId != 0 {
		merged.BookingID = serverBookingId
	}
	return merged, hasServerData
}

// Reconcile self-heals the draft against the server so a booking started on
// another device can be completed here. Empty server responses never clear
// the local draft.
func Reconcile(ctx context.Context, store draft.Store, fetcher PendingLegFetcher, userId, token string) (models.BookingDraft, error) {
	local, err := store.Get(ctx, userId)
	if err != nil {
		return models.BookingDraft{}, err
	}
	pending := FetchPendingLegs(ctx, fetcher, token)
	merged, hasServerData := MergePending(local, pending)
	if hasServerData {
		if err := store.Save(ctx, userId, merged); err != nil {
			return merged, err
		}
	}
	return merged, nil
}
