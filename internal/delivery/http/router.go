package http

import (
	"net/http"

	"wellness-cms-backend/internal/delivery/http/handler"
	"wellness-cms-backend/internal/delivery/http/middleware"
	"wellness-cms-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	aboutHandler        *handler.AboutHandler
	treatmentHandler    *handler.TreatmentHandler
	clinicHandler       *handler.ClinicHandler
	offerHandler        *handler.OfferHandler
	blogHandler         *handler.BlogHandler
	appointmentHandler  *handler.AppointmentHandler
	contactHandler      *handler.ContactHandler
	siteSettingsHandler *handler.SiteSettingsHandler
	whyChooseUsHandler  *handler.WhyChooseUsHandler
	contentHandler      *handler.ContentHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	recoveryMiddleware  *middleware.RecoveryMiddleware
}

func NewRouter(
	aboutHandler *handler.AboutHandler,
	treatmentHandler *handler.TreatmentHandler,
	clinicHandler *handler.ClinicHandler,
	offerHandler *handler.OfferHandler,
	blogHandler *handler.BlogHandler,
	appointmentHandler *handler.AppointmentHandler,
	contactHandler *handler.ContactHandler,
	siteSettingsHandler *handler.SiteSettingsHandler,
	whyChooseUsHandler *handler.WhyChooseUsHandler,
	contentHandler *handler.ContentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter().StrictSlash(true),
		aboutHandler:        aboutHandler,
		treatmentHandler:    treatmentHandler,
		clinicHandler:       clinicHandler,
		offerHandler:        offerHandler,
		blogHandler:         blogHandler,
		appointmentHandler:  appointmentHandler,
		contactHandler:      contactHandler,
		siteSettingsHandler: siteSettingsHandler,
		whyChooseUsHandler:  whyChooseUsHandler,
		contentHandler:      contentHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		recoveryMiddleware:  recoveryMiddleware,
	}
}

// endpointMap mirrors GET /endpoints/: a self-describing name -> path index
// of the public API.
var endpointMap = map[string]string{
	"landing_bg":           "/api/landing-bg/",
	"about_us":             "/api/about-us/",
	"treatments":           "/api/treatments/",
	"treatment_categories": "/api/treatments/categories/",
	"treatment_nav":        "/api/treatments/categories/nav/",
	"treatment_detail":     "/api/treatments/{id}/",
	"treatment_faq":        "/api/treatments/faq/",
	"clinics":              "/api/clinics/",
	"clinic_detail":        "/api/clinics/{id}/",
	"clinic_treatments":    "/api/clinics/{id}/treatments/",
	"clinic_offers":        "/api/clinics/{id}/offers/",
	"offers":               "/api/offers/",
	"blogs":                "/api/blogs/",
	"blog_detail":          "/api/blogs/{slug}/",
	"results":              "/api/results/",
	"skin_concerns":        "/api/skin-concerns/",
	"landing_faq":          "/api/landing/faq/",
	"why_choose_us":        "/api/why-choose-us/",
	"testimonials":         "/api/testimonials/",
	"appointments":         "/api/appointments/",
	"contact":              "/api/contact/",
	"site_settings":        "/api/site-settings/",
	"health":               "/api/health/",
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health/", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/endpoints/", r.endpoints).Methods(http.MethodGet)

	// Landing page content
	api.HandleFunc("/landing-bg/", r.contentHandler.GetLandingBackground).Methods(http.MethodGet)
	api.HandleFunc("/landing/faq/", r.contentHandler.GetLandingFAQs).Methods(http.MethodGet)
	api.HandleFunc("/results/", r.contentHandler.GetResults).Methods(http.MethodGet)
	api.HandleFunc("/skin-concerns/", r.contentHandler.GetSkinConcerns).Methods(http.MethodGet)
	api.HandleFunc("/testimonials/", r.contentHandler.GetTestimonials).Methods(http.MethodGet)

	// About us
	api.HandleFunc("/about-us/", r.aboutHandler.Get).Methods(http.MethodGet)

	// Treatments; fixed paths before the numeric detail route
	api.HandleFunc("/treatments/", r.treatmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/treatments/categories/", r.treatmentHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/treatments/categories/nav/", r.treatmentHandler.GetNav).Methods(http.MethodGet)
	api.HandleFunc("/treatments/faq/", r.contentHandler.GetTreatmentFAQs).Methods(http.MethodGet)
	api.HandleFunc("/treatments/{id:[0-9]+}/", r.treatmentHandler.GetDetail).Methods(http.MethodGet)

	// Clinics
	api.HandleFunc("/clinics/", r.clinicHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id:[0-9]+}/", r.clinicHandler.GetDetail).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id:[0-9]+}/treatments/", r.clinicHandler.GetTreatments).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{id:[0-9]+}/offers/", r.clinicHandler.GetOffers).Methods(http.MethodGet)

	// Offers
	api.HandleFunc("/offers/", r.offerHandler.GetAll).Methods(http.MethodGet)

	// Blogs
	api.HandleFunc("/blogs/", r.blogHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/blogs/", r.blogHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/blogs/{slug}/", r.blogHandler.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/blogs/{slug}/", r.blogHandler.Update).Methods(http.MethodPut, http.MethodPatch)

	// Why choose us
	api.HandleFunc("/why-choose-us/", r.whyChooseUsHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/why-choose-us/", r.whyChooseUsHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/why-choose-us/{id:[0-9]+}/", r.whyChooseUsHandler.Update).Methods(http.MethodPut)

	// Intake
	api.HandleFunc("/appointments/", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/status/", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	api.HandleFunc("/contact/", r.contactHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/contact/{id}/read/", r.contactHandler.MarkRead).Methods(http.MethodPatch)

	// Site settings
	api.HandleFunc("/site-settings/", r.siteSettingsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/site-settings/", r.siteSettingsHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/site-settings/", r.siteSettingsHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) endpoints(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, endpointMap)
}
