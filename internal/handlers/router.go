// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"fieldops/internal/handlers/assets"
	"fieldops/internal/handlers/jobs"
	"fieldops/internal/handlers/technicians"
	"fieldops/internal/handlers/timeentries"
	"fieldops/internal/service"
)

func RegisterRoutes(mux *chi.Mux, svcs service.Services) {
	t := technicians.New(svcs.Technicians)
	j := jobs.New(svcs.Jobs)
	a := assets.New(svcs.Assets)
	te := timeentries.New(svcs.TimeEntries)

	mux.Route("/technicians", func(sr chi.Router) {
		sr.Get("/", t.List)
		sr.Post("/", t.Create)
		sr.Get("/{id}", t.Get)
		sr.Put("/{id}", t.Update)
		sr.Delete("/{id}", t.Delete)
		sr.Get("/{id}/schedule", t.Schedule)
	})

	mux.Route("/jobs", func(sr chi.Router) {
		sr.Get("/", j.List)
		sr.Post("/", j.Create)
		sr.Get("/{id}", j.Get)
		sr.Put("/{id}", j.Update)
		sr.Delete("/{id}", j.Delete)
		sr.Put("/{id}/status", j.UpdateStatus)
		sr.Post("/{id}/notes", j.AddNotes)
		sr.Post("/{id}/assets/{assetId}", j.RecordAssetUsage)
	})

	mux.Route("/assets", func(sr chi.Router) {
		sr.Get("/", a.List)
		sr.Get("/available", a.ListAvailable)
		sr.Post("/", a.Create)
		sr.Get("/{id}", a.Get)
		sr.Put("/{id}", a.Update)
		sr.Delete("/{id}", a.Delete)
		sr.Post("/{id}/assign", a.Assign)
		sr.Post("/{id}/unassign", a.Unassign)
		sr.Put("/{id}/quantity", a.UpdateQuantity)
	})

	mux.Route("/time-entries", func(sr chi.Router) {
		sr.Get("/", te.List)
		sr.Post("/start", te.Start)
		sr.Put("/{id}/end", te.End)
		sr.Get("/technician/{technicianId}/total-hours", te.TotalHours)
	})
}
