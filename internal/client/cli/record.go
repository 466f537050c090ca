package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mantisworks/mantis-field/internal/client/evidence"
	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/client/services"
	"github.com/mantisworks/mantis-field/internal/common"

	"github.com/google/uuid"
)

// record captures a new infringement into the local queue. Works fully
// offline; the watcher drains the queue when coverage returns.
func (a *App) record(ctx context.Context) {
	if !a.isUnlocked() {
		fmt.Fprintln(a.out, "Log in or unlock first.")
		return
	}

	in := services.EnqueueInput{}
	var err error

	if in.VehicleRegNumber, err = GetSimpleText(a.reader, "Vehicle registration number", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if in.OffenceID, err = GetSimpleText(a.reader, "Offence code", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if in.DriverLicenceNumber, err = GetSimpleText(a.reader, "Driver licence number (optional)", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if in.LocationDescription, err = GetSimpleText(a.reader, "Location (optional)", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if in.Notes, err = GetMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	in.Gps = a.askGps()
	in.Photos = a.askPhotos(in.Gps)

	rec, err := a.queue.Enqueue(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Could not record:", err)
		return
	}

	fmt.Fprintf(a.out, "Recorded %s (queued for sync).\n", rec.LocalID)
}

// askGps reads an optional "lat,lon[,accuracy]" fix.
func (a *App) askGps() *models.GpsCoordinates {
	raw, err := GetSimpleText(a.reader, "GPS fix lat,lon[,accuracy] (optional)", a.out)
	if err != nil || raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		fmt.Fprintln(a.out, "Ignoring malformed GPS fix.")
		return nil
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(a.out, "Ignoring malformed GPS fix.")
		return nil
	}

	gps := &models.GpsCoordinates{Latitude: lat, Longitude: lon}
	if len(parts) > 2 {
		gps.Accuracy, _ = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	}
	return gps
}

// askPhotos collects evidence photo paths, watermarking each copy with the
// capture context. The original files are left untouched.
func (a *App) askPhotos(gps *models.GpsCoordinates) []models.EvidencePhoto {
	var photos []models.EvidencePhoto

	for len(photos) < common.MaxEvidencePhotos {
		path, err := GetSimpleText(a.reader, "Evidence photo path (empty to finish)", a.out)
		if err != nil || path == "" {
			break
		}

		stamped := stampedPath(path)
		stamp := evidence.Stamp{
			Timestamp:   time.Now(),
			Gps:         gps,
			BadgeNumber: a.auth.BadgeNumber(context.Background()),
		}
		if err := evidence.WatermarkFile(path, stamped, stamp); err != nil {
			fmt.Fprintln(a.out, "Could not process photo:", err)
			continue
		}

		photos = append(photos, models.EvidencePhoto{
			LocalID: uuid.NewString(),
			Path:    stamped,
		})
		fmt.Fprintf(a.out, "Added photo %d of %d.\n", len(photos), common.MaxEvidencePhotos)
	}

	return photos
}

func stampedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".stamped" + ext
}
