package usecase

import (
	"io"
	"testing"

	"wellness-cms-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testMediaBase = "https://cdn.test/media"

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the memory database alive across queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.LandingPageBg{}, &entity.CarouselImage{},
		&entity.AboutUs{}, &entity.TeamMember{}, &entity.PhilosophyHighlight{},
		&entity.TreatmentCategory{}, &entity.Treatment{},
		&entity.TreatmentBenefit{}, &entity.TreatmentStep{},
		&entity.TreatmentClinicPricing{}, &entity.TreatmentFAQ{},
		&entity.Clinic{}, &entity.ClinicImage{}, &entity.ClinicTeamMember{},
		&entity.Offer{}, &entity.Appointment{}, &entity.ContactMessage{},
		&entity.Blog{}, &entity.BlogImage{},
		&entity.SiteSettings{}, &entity.WhyChooseUs{},
		&entity.SkinConcern{}, &entity.LandingFAQ{},
		&entity.Testimonial{}, &entity.Result{},
	))

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeNotifier struct {
	appointmentCalls int
	contactCalls     int
	lastClinicName   string
}

func (f *fakeNotifier) NotifyAppointmentCreated(a *entity.Appointment, clinicName string) {
	f.appointmentCalls++
	f.lastClinicName = clinicName
}

func (f *fakeNotifier) NotifyContactMessageCreated(m *entity.ContactMessage) {
	f.contactCalls++
}

func uintPtr(v uint) *uint {
	return &v
}
