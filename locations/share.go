package locations

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"waymark/storage"
	"waymark/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

func baseURL() string {
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:4000"
}

// LocationQR renders a PNG QR code pointing at the location's public page.
func LocationQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("locationid")

	loc, err := storage.Current.GetLocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch location")
		return
	}

	shareURL := fmt.Sprintf("%s/locations/%s", baseURL(), loc.LocationID)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}

// ExportPDF writes the full location catalog as a downloadable PDF.
func ExportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	locations, err := storage.Current.ListLocations(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Location Catalog", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Location Catalog")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s - %d locations", time.Now().Format("Jan 2, 2006"), len(locations)))
	pdf.Ln(12)

	for _, loc := range locations {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, loc.Name)
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		place := loc.State
		if loc.City != "" {
			place = loc.City + ", " + loc.State
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s  |  %s", place, loc.Category))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("Lat %.5f, Lng %.5f", loc.Latitude, loc.Longitude))
		pdf.Ln(5)
		if loc.Description != "" {
			pdf.MultiCell(0, 5, loc.Description, "", "L", false)
		}
		pdf.Ln(6)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="locations.pdf"`)
	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
	}
}
